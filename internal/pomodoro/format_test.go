package pomodoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		59:   "00:59",
		60:   "01:00",
		125:  "02:05",
		1500: "25:00",
		3600: "60:00",
		6000: "100:00",
		-3:   "00:00",
	}
	for seconds, want := range cases {
		assert.Equal(t, want, FormatTime(seconds), "FormatTime(%d)", seconds)
	}
}
