package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/alexanderramin/cps/internal/export"
	"github.com/alexanderramin/cps/internal/scheduler"
	"github.com/google/uuid"
)

type scheduleService struct {
	observer UseCaseObserver
}

func NewScheduleService(observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		observer: firstObserver(observers),
	}
}

func (s *scheduleService) Build(ctx context.Context, plan *domain.Plan) (result *ScheduleResult, err error) {
	startedAt := time.Now().UTC()
	fields := planFields(plan)
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	result, err = s.build(plan)
	if err != nil {
		return nil, err
	}
	fields["schedule_id"] = result.ID
	return result, nil
}

func (s *scheduleService) ExportCSV(ctx context.Context, result *ScheduleResult, dir string) (path string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dir": dir}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if result == nil {
		return "", fmt.Errorf("schedule is required")
	}
	fields["schedule_id"] = result.ID
	fields["milestones"] = len(result.Schedule.Entries)

	path, err = export.ExportToFile(dir, result.Schedule)
	if err != nil {
		return "", fmt.Errorf("exporting schedule: %w", err)
	}
	fields["path"] = path
	return path, nil
}

func (s *scheduleService) build(plan *domain.Plan) (*ScheduleResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return &ScheduleResult{
		ID:       uuid.New().String(),
		Schedule: scheduler.Build(plan),
	}, nil
}

func planFields(plan *domain.Plan) map[string]any {
	if plan == nil {
		return map[string]any{}
	}
	return map[string]any{
		"base_date":     domain.FormatDate(plan.BaseDate),
		"milestones":    len(plan.Milestones),
		"business_days": plan.BusinessDaysOnly,
	}
}
