package scheduler

import (
	"time"

	"github.com/alexanderramin/cps/internal/domain"
)

// BuildSchedule resolves every milestone against base independently and
// returns the entries in input order. Two milestones with the same offset
// land on the same day; nothing propagates between entries.
func BuildSchedule(base time.Time, milestones []domain.Milestone, businessDaysOnly bool) domain.Schedule {
	offset := AddCalendarDays
	if businessDaysOnly {
		offset = AddBusinessDays
	}

	entries := make([]domain.ScheduledEntry, 0, len(milestones))
	for _, m := range milestones {
		start := offset(base, m.OffsetDays)
		entries = append(entries, domain.ScheduledEntry{
			Name:       m.Name,
			OffsetDays: m.OffsetDays,
			StartDate:  start,
			// One calendar day of span for display, even on weekends.
			EndDate: AddCalendarDays(start, 1),
		})
	}

	return domain.Schedule{
		BaseDate:         base,
		BusinessDaysOnly: businessDaysOnly,
		Entries:          entries,
	}
}

// Build schedules a plan. The plan is expected to have passed Validate.
func Build(p *domain.Plan) domain.Schedule {
	return BuildSchedule(p.BaseDate, p.Milestones, p.BusinessDaysOnly)
}
