package domain

// DayCount selects how milestone offsets are counted from the base date.
type DayCount string

const (
	CalendarDays DayCount = "calendar"
	BusinessDays DayCount = "business"
)

// DayCountFor maps the business-days-only flag to its DayCount.
func DayCountFor(businessDaysOnly bool) DayCount {
	if businessDaysOnly {
		return BusinessDays
	}
	return CalendarDays
}

// Label returns the human-readable name of the counting mode.
func (d DayCount) Label() string {
	if d == BusinessDays {
		return "Business days (weekends skipped)"
	}
	return "Calendar days"
}
