package workers

import "time"

// nextMidnight returns the next local 00:00:00 strictly after now.
// Sleeping until a computed boundary instead of polling the wall clock
// keeps the timers drift-free and cheap.
func nextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// nextHourTop returns the next local hh:00:00 strictly after now.
func nextHourTop(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, now.Hour()+1, 0, 0, 0, now.Location())
}

// inWindow reports whether hour lies in the half-open active window
// [start, end). A window that wraps midnight (start > end) is honored too.
func inWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
