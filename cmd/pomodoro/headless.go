package main

import (
	"context"
	"fmt"
	"io"

	"github.com/adibhanna/pomodoro/internal/app"
)

// runHeadless prints one line per snapshot until ctx is done or the
// controller closes.
func runHeadless(ctx context.Context, ctrl *app.Controller, out io.Writer) error {
	updates, unsubscribe := ctrl.Subscribe(8)
	defer unsubscribe()

	printer := &linePrinter{out: out}
	printer.print(ctrl.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			printer.print(snap)
		}
	}
}

type linePrinter struct {
	out  io.Writer
	last string
	seen int
}

func (p *linePrinter) print(snap app.Snapshot) {
	if snap.Last != nil && snap.TodayStats.PomodoroCount+snap.TodayStats.BreakCount != p.seen {
		p.seen = snap.TodayStats.PomodoroCount + snap.TodayStats.BreakCount
		next := "waiting"
		if snap.Last.AutoStarted {
			next = "started"
		}
		fmt.Fprintf(p.out, "%s finished, %s next (%s), completed %d\n",
			snap.Last.From, snap.Last.To, next, snap.Last.Completed)
	}

	line := statusLine(snap)
	if line == p.last {
		return
	}
	p.last = line
	fmt.Fprintln(p.out, line)
}

func statusLine(snap app.Snapshot) string {
	state := "paused"
	if snap.State.Running {
		state = "running"
	}
	return fmt.Sprintf("[%s] %s %s", snap.State.Mode, snap.Display, state)
}
