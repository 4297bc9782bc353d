package pomodoro

import "fmt"

// FormatTime renders seconds as zero-padded MM:SS. Minutes are not wrapped
// into hours, so 3600 renders as "60:00".
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
