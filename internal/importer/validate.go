package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cps/internal/domain"
)

// ValidatePlanSchema checks the plan file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	if schema.BaseDate != "" {
		if _, err := domain.ParseDate(schema.BaseDate); err != nil {
			errs = append(errs, fmt.Errorf("base_date: invalid date format %q (expected YYYY-MM-DD)", schema.BaseDate))
		}
	}

	errs = append(errs, validateMilestones(schema.Milestones)...)

	return errs
}

func validateMilestones(milestones []MilestoneImport) []error {
	var errs []error

	if n := len(milestones); n < domain.MinMilestones || n > domain.MaxMilestones {
		errs = append(errs, fmt.Errorf("milestones: expected %d-%d entries, got %d", domain.MinMilestones, domain.MaxMilestones, n))
	}

	for i, m := range milestones {
		prefix := fmt.Sprintf("milestones[%d]", i)

		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if m.OffsetDays == nil {
			errs = append(errs, fmt.Errorf("%s.offset_days is required", prefix))
		} else if *m.OffsetDays < 0 {
			errs = append(errs, fmt.Errorf("%s.offset_days must be non-negative, got %d", prefix, *m.OffsetDays))
		} else if *m.OffsetDays > domain.MaxOffsetDays {
			errs = append(errs, fmt.Errorf("%s.offset_days must be at most %d, got %d", prefix, domain.MaxOffsetDays, *m.OffsetDays))
		}
	}

	return errs
}
