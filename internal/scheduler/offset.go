package scheduler

import "time"

// IsBusinessDay reports whether d falls Monday through Friday.
func IsBusinessDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// AddBusinessDays returns the day on which the n-th weekday after start is
// reached. The start day itself is never counted, so a weekend start lands
// on the following Monday for n = 1. n <= 0 returns start unchanged.
func AddBusinessDays(start time.Time, n int) time.Time {
	if n <= 0 {
		return start
	}

	// Every 7 consecutive days hold 5 weekdays. At least one weekday is left
	// for the loop so the result is always the weekday that completes n.
	weeks := (n - 1) / 5
	current := start.AddDate(0, 0, weeks*7)
	n -= weeks * 5

	for n > 0 {
		current = current.AddDate(0, 0, 1)
		if IsBusinessDay(current) {
			n--
		}
	}
	return current
}

// AddCalendarDays returns start plus n calendar days.
func AddCalendarDays(start time.Time, n int) time.Time {
	return start.AddDate(0, 0, n)
}
