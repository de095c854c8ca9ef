package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cps/internal/cli/formatter"
	"github.com/alexanderramin/cps/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cpsHuhTheme returns a custom huh theme using the formatter's Gruvbox palette.
func cpsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dateInput returns a huh.Input for a required YYYY-MM-DD date.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(domain.DateLayout).
		Value(value).
		Validate(validateDate)
}

// milestoneCountInput returns a huh.Input for the number of milestones.
func milestoneCountInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Number of milestones").
		Description(fmt.Sprintf("Between %d and %d", domain.MinMilestones, domain.MaxMilestones)).
		Placeholder(strconv.Itoa(domain.DefaultMilestoneCount)).
		Value(value).
		Validate(validateMilestoneCount)
}

// milestoneGroup returns the name and offset inputs for the i-th milestone.
func milestoneGroup(i int, name, offset *string) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Milestone %d name", i+1)).
			Placeholder(domain.DefaultMilestoneName(i)).
			Value(name).
			Validate(validateRequired("name")),
		huh.NewInput().
			Title("Days after base date").
			Placeholder(strconv.Itoa(domain.DefaultMilestoneOffset(i))).
			Value(offset).
			Validate(validateOffset),
	)
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateMilestoneCount accepts an integer within the supported range.
func validateMilestoneCount(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < domain.MinMilestones || v > domain.MaxMilestones {
		return fmt.Errorf("enter a number from %d to %d", domain.MinMilestones, domain.MaxMilestones)
	}
	return nil
}

// validateOffset accepts empty or a whole number of days within range.
func validateOffset(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > domain.MaxOffsetDays {
		return fmt.Errorf("enter a number from 0 to %d", domain.MaxOffsetDays)
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// parseOffset parses s, returning fallback if s is empty. Used after form
// validation, so any value validateOffset rejects also maps to fallback.
func parseOffset(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > domain.MaxOffsetDays {
		return fallback
	}
	return v
}
