package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cps/internal/domain"
)

// DefaultBaseDate is Monday 2024-01-01, the base date most fixtures use.
var DefaultBaseDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Plan options
type PlanOption func(*domain.Plan)

func WithBaseDate(d time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.BaseDate = domain.DateOf(d)
	}
}

func WithBusinessDays() PlanOption {
	return func(p *domain.Plan) {
		p.BusinessDaysOnly = true
	}
}

func WithMilestone(name string, offset int) PlanOption {
	return func(p *domain.Plan) {
		p.Milestones = append(p.Milestones, domain.Milestone{Name: name, OffsetDays: offset})
	}
}

// WithMilestoneCount appends n milestones named "M<i>" with offsets 0..n-1.
func WithMilestoneCount(n int) PlanOption {
	return func(p *domain.Plan) {
		for i := 0; i < n; i++ {
			p.Milestones = append(p.Milestones, domain.Milestone{Name: fmt.Sprintf("M%d", i+1), OffsetDays: i})
		}
	}
}

// NewTestPlan returns a calendar-day plan on DefaultBaseDate. Without any
// milestone options it carries the default milestones.
func NewTestPlan(opts ...PlanOption) *domain.Plan {
	p := &domain.Plan{BaseDate: DefaultBaseDate}
	for _, opt := range opts {
		opt(p)
	}
	if p.Milestones == nil {
		p.Milestones = domain.DefaultMilestones(domain.DefaultMilestoneCount)
	}
	return p
}
