package service

import (
	"context"

	"github.com/alexanderramin/cps/internal/domain"
)

// ScheduleResult is a built schedule tagged with the ID of the run that
// produced it.
type ScheduleResult struct {
	ID       string
	Schedule domain.Schedule
}

type ScheduleService interface {
	Build(ctx context.Context, plan *domain.Plan) (*ScheduleResult, error)
	// ExportCSV writes an already built schedule to dir and returns the
	// file path.
	ExportCSV(ctx context.Context, result *ScheduleResult, dir string) (path string, err error)
}
