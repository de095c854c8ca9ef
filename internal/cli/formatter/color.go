package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette, by role.
var (
	ColorHeader   = lipgloss.Color("#fe8019")
	ColorFg       = lipgloss.Color("#ebdbb2")
	ColorDim      = lipgloss.Color("#928374")
	ColorBar      = lipgloss.Color("#8ec07c")
	ColorWeekend  = lipgloss.Color("#fabd2f")
	ColorBusiness = lipgloss.Color("#83a598")
)

var (
	StyleHeader   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold     = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleBar      = lipgloss.NewStyle().Foreground(ColorBar)
	StyleWeekend  = lipgloss.NewStyle().Foreground(ColorWeekend)
	StyleBusiness = lipgloss.NewStyle().Foreground(ColorBusiness)
)

// DayCountBadge labels the counting mode of a schedule.
func DayCountBadge(d domain.DayCount) string {
	if d == domain.BusinessDays {
		return StyleBusiness.Render("● BUSINESS DAYS") + Dim(" (weekends skipped)")
	}
	return StyleBar.Render("● CALENDAR DAYS")
}

// Header renders an upper-cased section title over a dim rule.
func Header(text string) string {
	title := strings.ToUpper(text)
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(title), Dim(strings.Repeat("─", len(title))))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
