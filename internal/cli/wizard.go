package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/charmbracelet/huh"
)

// planAnswers holds the raw strings collected by the wizard forms.
type planAnswers struct {
	base     string
	count    string
	names    []string
	offsets  []string
	business bool
}

func newPlanAnswers(defaults domain.Plan) *planAnswers {
	return &planAnswers{
		base:     domain.FormatDate(defaults.BaseDate),
		count:    strconv.Itoa(domain.DefaultMilestoneCount),
		business: defaults.BusinessDaysOnly,
	}
}

// resize pre-fills name and offset slots for n milestones, keeping any
// answers already given.
func (a *planAnswers) resize(n int) {
	for i := len(a.names); i < n; i++ {
		a.names = append(a.names, domain.DefaultMilestoneName(i))
		a.offsets = append(a.offsets, strconv.Itoa(domain.DefaultMilestoneOffset(i)))
	}
	a.names = a.names[:n]
	a.offsets = a.offsets[:n]
}

// plan converts the answers into a Plan. Empty offsets fall back to the
// default spacing.
func (a *planAnswers) plan() (*domain.Plan, error) {
	base, err := domain.ParseDate(a.base)
	if err != nil {
		return nil, err
	}

	milestones := make([]domain.Milestone, 0, len(a.names))
	for i, name := range a.names {
		milestones = append(milestones, domain.Milestone{
			Name:       strings.TrimSpace(name),
			OffsetDays: parseOffset(a.offsets[i], domain.DefaultMilestoneOffset(i)),
		})
	}

	return &domain.Plan{
		BaseDate:         base,
		Milestones:       milestones,
		BusinessDaysOnly: a.business,
	}, nil
}

// runPlanWizard asks for the base date and milestone count, then for each
// milestone's name and offset, then for the counting mode.
func runPlanWizard(ctx context.Context, defaults domain.Plan) (*domain.Plan, error) {
	answers := newPlanAnswers(defaults)

	intro := huh.NewForm(
		huh.NewGroup(
			dateInput("Base date (e.g. briefing day)", &answers.base),
			milestoneCountInput(&answers.count),
		).Title("Critical Path Schedule"),
	).WithTheme(cpsHuhTheme()).WithShowHelp(false)
	if err := intro.RunWithContext(ctx); err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(answers.count))
	if err != nil {
		return nil, fmt.Errorf("number of milestones: %w", err)
	}
	answers.resize(n)

	groups := make([]*huh.Group, 0, n+1)
	for i := 0; i < n; i++ {
		groups = append(groups, milestoneGroup(i, &answers.names[i], &answers.offsets[i]))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewConfirm().
			Title("Use business days only (skip weekends)?").
			Affirmative("Yes").
			Negative("No").
			Value(&answers.business),
	))

	details := huh.NewForm(groups...).WithTheme(cpsHuhTheme()).WithShowHelp(false)
	if err := details.RunWithContext(ctx); err != nil {
		return nil, err
	}

	return answers.plan()
}
