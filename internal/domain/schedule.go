package domain

import "time"

// ScheduledEntry is a milestone resolved to concrete dates. EndDate is always
// the day after StartDate so the entry has a visible span on a timeline; it is
// never moved off a weekend.
type ScheduledEntry struct {
	Name       string
	OffsetDays int
	StartDate  time.Time
	EndDate    time.Time
}

// Schedule is the ordered result of scheduling a Plan.
type Schedule struct {
	BaseDate         time.Time
	BusinessDaysOnly bool
	Entries          []ScheduledEntry
}

// DayCount returns the counting mode the schedule was built with.
func (s Schedule) DayCount() DayCount {
	return DayCountFor(s.BusinessDaysOnly)
}

// Span returns the earliest start and latest end across all entries.
// Both are zero for an empty schedule.
func (s Schedule) Span() (first, last time.Time) {
	for i, e := range s.Entries {
		if i == 0 || e.StartDate.Before(first) {
			first = e.StartDate
		}
		if i == 0 || e.EndDate.After(last) {
			last = e.EndDate
		}
	}
	return first, last
}
