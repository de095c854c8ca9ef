package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/alexanderramin/cps/internal/export"
)

// FormatSchedule renders the schedule summary box followed by the schedule
// table.
func FormatSchedule(s domain.Schedule) string {
	var b strings.Builder

	summary := fmt.Sprintf("%s  %s\n%s  %s\n%s  %d",
		Dim("Base date "), Bold(HumanDate(s.BaseDate)),
		Dim("Counting  "), DayCountBadge(s.DayCount()),
		Dim("Milestones"), len(s.Entries),
	)
	b.WriteString(RenderBox("Critical Path Schedule", summary))
	b.WriteString("\n\n")
	b.WriteString(FormatScheduleTable(s))

	return b.String()
}

// FormatScheduleTable renders one row per entry in schedule order, under the
// same column names as the CSV export.
func FormatScheduleTable(s domain.Schedule) string {
	rows := make([][]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		rows = append(rows, []string{
			e.Name,
			strconv.Itoa(e.OffsetDays),
			DateCell(e.StartDate),
			DateCell(e.EndDate),
		})
	}
	return RenderTable(export.Header, rows, 1)
}
