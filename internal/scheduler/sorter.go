package scheduler

import (
	"sort"

	"github.com/alexanderramin/cps/internal/domain"
)

// TimelineOrder returns a copy of entries ordered for a timeline view:
// 1. Start date: earliest first
// 2. Input order
// The schedule itself is left in input order.
func TimelineOrder(entries []domain.ScheduledEntry) []domain.ScheduledEntry {
	out := make([]domain.ScheduledEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out
}
