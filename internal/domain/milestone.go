package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinMilestones = 1
	MaxMilestones = 20

	// MaxOffsetDays caps a milestone offset at roughly one century.
	MaxOffsetDays = 36500

	// DefaultMilestoneCount is the number of milestones offered when the
	// user has not supplied any.
	DefaultMilestoneCount = 5
	defaultOffsetStep     = 5
)

// Milestone is a named offset in days from the plan's base date.
type Milestone struct {
	Name       string
	OffsetDays int
}

// Plan is the validated input to the schedule calculator. Milestones keep
// their input order and duplicate names stay distinct entries.
type Plan struct {
	BaseDate         time.Time
	Milestones       []Milestone
	BusinessDaysOnly bool
}

// Validate reports every problem with the plan. A plan that passes can
// always be scheduled.
func (p *Plan) Validate() error {
	var errs []error

	if p.BaseDate.IsZero() {
		errs = append(errs, fmt.Errorf("base date is required"))
	}
	if n := len(p.Milestones); n < MinMilestones || n > MaxMilestones {
		errs = append(errs, fmt.Errorf("number of milestones must be between %d and %d, got %d", MinMilestones, MaxMilestones, n))
	}
	for i, m := range p.Milestones {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, fmt.Errorf("milestone %d: name is required", i+1))
		}
		switch {
		case m.OffsetDays < 0:
			errs = append(errs, fmt.Errorf("milestone %d (%q): days after base date must be non-negative, got %d", i+1, m.Name, m.OffsetDays))
		case m.OffsetDays > MaxOffsetDays:
			errs = append(errs, fmt.Errorf("milestone %d (%q): days after base date must be at most %d, got %d", i+1, m.Name, MaxOffsetDays, m.OffsetDays))
		}
	}

	return errors.Join(errs...)
}

// DefaultMilestoneName is the placeholder name for the i-th milestone (0-based).
func DefaultMilestoneName(i int) string {
	return fmt.Sprintf("Milestone %d", i+1)
}

// DefaultMilestoneOffset is the placeholder offset for the i-th milestone (0-based).
func DefaultMilestoneOffset(i int) int {
	return i * defaultOffsetStep
}

// DefaultMilestones returns n placeholder milestones spaced five days apart.
func DefaultMilestones(n int) []Milestone {
	out := make([]Milestone, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Milestone{Name: DefaultMilestoneName(i), OffsetDays: DefaultMilestoneOffset(i)})
	}
	return out
}

// ParseMilestone parses a "Name=Offset" pair. The last '=' separates the
// offset so names may themselves contain '='.
func ParseMilestone(s string) (Milestone, error) {
	idx := strings.LastIndex(s, "=")
	if idx < 0 {
		return Milestone{}, fmt.Errorf("milestone %q must be in Name=Offset form", s)
	}
	name := strings.TrimSpace(s[:idx])
	if name == "" {
		return Milestone{}, fmt.Errorf("milestone %q: name is required", s)
	}
	offset, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
	if err != nil {
		return Milestone{}, fmt.Errorf("milestone %q: offset must be a whole number of days", s)
	}
	if offset < 0 {
		return Milestone{}, fmt.Errorf("milestone %q: offset must be non-negative", s)
	}
	if offset > MaxOffsetDays {
		return Milestone{}, fmt.Errorf("milestone %q: offset must be at most %d days", s, MaxOffsetDays)
	}
	return Milestone{Name: name, OffsetDays: offset}, nil
}

// String returns the milestone in Name=Offset form.
func (m Milestone) String() string {
	return fmt.Sprintf("%s=%d", m.Name, m.OffsetDays)
}
