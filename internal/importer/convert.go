package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cps/internal/domain"
)

// Convert transforms a validated PlanSchema into a domain Plan.
// Call ValidatePlanSchema first; Convert assumes the schema is valid.
// defaultBase is used when the file does not name a base date.
func Convert(schema *PlanSchema, defaultBase time.Time) (*domain.Plan, error) {
	base := defaultBase
	if schema.BaseDate != "" {
		d, err := domain.ParseDate(schema.BaseDate)
		if err != nil {
			return nil, fmt.Errorf("parsing base_date: %w", err)
		}
		base = d
	}

	milestones := make([]domain.Milestone, 0, len(schema.Milestones))
	for _, m := range schema.Milestones {
		offset := 0
		if m.OffsetDays != nil {
			offset = *m.OffsetDays
		}
		milestones = append(milestones, domain.Milestone{
			Name:       strings.TrimSpace(m.Name),
			OffsetDays: offset,
		})
	}

	plan := &domain.Plan{
		BaseDate:   base,
		Milestones: milestones,
	}
	if schema.BusinessDaysOnly != nil {
		plan.BusinessDaysOnly = *schema.BusinessDaysOnly
	}
	return plan, nil
}

// LoadPlan reads, validates and converts a plan file in one step.
func LoadPlan(path string, defaultBase time.Time) (*domain.Plan, error) {
	schema, err := LoadPlanSchema(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidatePlanSchema(schema); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid plan file %s:\n  %s", path, strings.Join(msgs, "\n  "))
	}
	return Convert(schema, defaultBase)
}
