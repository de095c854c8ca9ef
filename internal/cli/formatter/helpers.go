package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content in a rounded border, titled when title is set.
func RenderBox(title string, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// HumanDate returns a long-form date such as "Mon, Jan 8 2024".
func HumanDate(t time.Time) string {
	return t.Format("Mon, Jan 2 2006")
}

// DateCell renders a YYYY-MM-DD date followed by a dimmed weekday, with
// weekend weekdays highlighted.
func DateCell(t time.Time) string {
	wd := t.Format("Mon")
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		wd = StyleWeekend.Render(wd)
	default:
		wd = Dim(wd)
	}
	return domain.FormatDate(t) + " " + wd
}

func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
