package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/alexanderramin/cps/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock  = "█"
	emptyBlock   = "░"
	weekendBlock = "·"

	// DefaultTimelineWidth is the number of bar cells used when the caller
	// has no terminal width to offer.
	DefaultTimelineWidth = 60
	minTimelineWidth     = 10
)

// FormatTimeline renders a horizontal timeline with one row per entry,
// ordered by start date. Each bar covers [StartDate, EndDate) on a day axis
// running from the earliest start to the latest end. When the span is wider
// than width, each cell covers several days. Weekend cells are marked only
// when one cell is one day.
func FormatTimeline(s domain.Schedule, width int) string {
	if len(s.Entries) == 0 {
		return ""
	}
	if width < minTimelineWidth {
		width = minTimelineWidth
	}

	first, last := s.Span()
	days := dayIndex(first, last)
	perCell := (days + width - 1) / width
	if perCell < 1 {
		perCell = 1
	}
	cells := (days + perCell - 1) / perCell

	entries := scheduler.TimelineOrder(s.Entries)

	nameWidth := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")

	for _, e := range entries {
		startCell := dayIndex(first, e.StartDate) / perCell
		endCell := (dayIndex(first, e.EndDate) - 1) / perCell

		var bar strings.Builder
		for c := 0; c < cells; c++ {
			switch {
			case c >= startCell && c <= endCell:
				bar.WriteString(StyleBar.Render(filledBlock))
			case perCell == 1 && !scheduler.IsBusinessDay(first.AddDate(0, 0, c)):
				bar.WriteString(Dim(weekendBlock))
			default:
				bar.WriteString(Dim(emptyBlock))
			}
		}

		fmt.Fprintf(&b, "%s  %s  %s\n", padRight(e.Name, nameWidth), bar.String(), domain.FormatDate(e.StartDate))
	}

	fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", nameWidth),
		Dim(fmt.Sprintf("%s → %s (%d days, %d per cell)", domain.FormatDate(first), domain.FormatDate(last), days, perCell)))

	return b.String()
}

// dayIndex returns the number of whole days from first to d.
func dayIndex(first, d time.Time) int {
	return int(d.Sub(first).Hours() / 24)
}
