package service

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/alexanderramin/cps/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func samplePlan() *domain.Plan {
	return testutil.NewTestPlan(
		testutil.WithMilestone("Briefing", 0),
		testutil.WithMilestone("Review", 5),
		testutil.WithBusinessDays(),
	)
}

func TestScheduleService_Build(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewScheduleService(obs)

	res, err := svc.Build(context.Background(), samplePlan())
	require.NoError(t, err)

	_, parseErr := uuid.Parse(res.ID)
	assert.NoError(t, parseErr)
	require.Len(t, res.Schedule.Entries, 2)
	assert.Equal(t, "2024-01-08", domain.FormatDate(res.Schedule.Entries[1].StartDate))

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "build-schedule", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, res.ID, ev.Fields["schedule_id"])
	assert.Equal(t, 2, ev.Fields["milestones"])
	assert.Equal(t, true, ev.Fields["business_days"])
}

func TestScheduleService_Build_RejectsInvalidPlan(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewScheduleService(obs)

	plan := samplePlan()
	plan.Milestones[1].OffsetDays = -1

	_, err := svc.Build(context.Background(), plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid plan")

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Error(t, obs.events[0].Err)
}

func TestScheduleService_Build_NilPlan(t *testing.T) {
	_, err := NewScheduleService().Build(context.Background(), nil)
	require.Error(t, err)
}

func TestScheduleService_Build_FreshIDPerRun(t *testing.T) {
	svc := NewScheduleService()
	a, err := svc.Build(context.Background(), samplePlan())
	require.NoError(t, err)
	b, err := svc.Build(context.Background(), samplePlan())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Schedule, b.Schedule)
}

func TestScheduleService_ExportCSV(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewScheduleService(obs)
	dir := t.TempDir()

	res, err := svc.Build(context.Background(), samplePlan())
	require.NoError(t, err)

	path, err := svc.ExportCSV(context.Background(), res, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Review,5,2024-01-08,2024-01-09")

	require.Len(t, obs.events, 2)
	ev := obs.events[1]
	assert.Equal(t, "export-schedule", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, path, ev.Fields["path"])
	assert.Equal(t, res.ID, ev.Fields["schedule_id"], "export reports the build's run ID")
}

func TestScheduleService_ExportCSV_NilResult(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewScheduleService(obs)

	_, err := svc.ExportCSV(context.Background(), nil, t.TempDir())
	require.Error(t, err)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	svc := NewScheduleService(NewLogUseCaseObserver(logger))

	_, err := svc.Build(context.Background(), samplePlan())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=build-schedule")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "milestones=2")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestLogUseCaseObserver_FailureAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := NewScheduleService(NewLogUseCaseObserver(logger))

	plan := samplePlan()
	plan.Milestones[1].OffsetDays = -1
	_, err := svc.Build(context.Background(), plan)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "success=false")
	assert.Contains(t, out, "must be non-negative")
}
