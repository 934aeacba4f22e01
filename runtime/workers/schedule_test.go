package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextMidnight(t *testing.T) {
	req := require.New(t)
	loc := time.FixedZone("UTC+8", 8*3600)

	now := time.Date(2024, 3, 10, 23, 59, 30, 0, loc)
	req.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, loc), nextMidnight(now))

	// Exactly at midnight the next boundary is tomorrow, never now
	now = time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
	req.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, loc), nextMidnight(now))

	// Month rollover
	now = time.Date(2024, 2, 29, 12, 0, 0, 0, loc)
	req.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, loc), nextMidnight(now))
}

func TestNextHourTop(t *testing.T) {
	req := require.New(t)
	loc := time.FixedZone("UTC+8", 8*3600)

	now := time.Date(2024, 3, 10, 14, 30, 12, 0, loc)
	req.Equal(time.Date(2024, 3, 10, 15, 0, 0, 0, loc), nextHourTop(now))

	// Exactly on the hour rolls to the next one
	now = time.Date(2024, 3, 10, 14, 0, 0, 0, loc)
	req.Equal(time.Date(2024, 3, 10, 15, 0, 0, 0, loc), nextHourTop(now))

	// Day rollover
	now = time.Date(2024, 3, 10, 23, 5, 0, 0, loc)
	req.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, loc), nextHourTop(now))
}

func TestInWindow(t *testing.T) {
	tests := []struct {
		description string
		hour        int
		start, end  int
		want        bool
	}{
		{"inside plain window", 12, 9, 22, true},
		{"start is inclusive", 9, 9, 22, true},
		{"end is exclusive", 22, 9, 22, false},
		{"before window", 8, 9, 22, false},
		{"wrapping window, late evening", 23, 20, 2, true},
		{"wrapping window, early morning", 1, 20, 2, true},
		{"wrapping window, outside", 10, 20, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, inWindow(tt.hour, tt.start, tt.end))
		})
	}
}
