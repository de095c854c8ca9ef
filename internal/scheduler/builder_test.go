package scheduler

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/alexanderramin/cps/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedule_BusinessDays(t *testing.T) {
	s := BuildSchedule(date(2024, time.January, 1), []domain.Milestone{{Name: "Briefing", OffsetDays: 5}}, true)

	require.Len(t, s.Entries, 1)
	assert.Equal(t, date(2024, time.January, 8), s.Entries[0].StartDate)
	assert.Equal(t, date(2024, time.January, 9), s.Entries[0].EndDate)
	assert.True(t, s.BusinessDaysOnly)
	assert.Equal(t, domain.BusinessDays, s.DayCount())
}

func TestBuildSchedule_CalendarDays(t *testing.T) {
	s := BuildSchedule(date(2024, time.January, 1), []domain.Milestone{{Name: "Briefing", OffsetDays: 5}}, false)

	require.Len(t, s.Entries, 1)
	assert.Equal(t, date(2024, time.January, 6), s.Entries[0].StartDate)
	assert.Equal(t, 5, s.Entries[0].OffsetDays)
}

func TestBuildSchedule_WeekendBaseSkipped(t *testing.T) {
	s := BuildSchedule(date(2024, time.January, 6), []domain.Milestone{{Name: "First", OffsetDays: 1}}, true)

	assert.Equal(t, date(2024, time.January, 8), s.Entries[0].StartDate)
}

func TestBuildSchedule_EndDateNotMovedOffWeekend(t *testing.T) {
	// Friday + 0 business days stays Friday; the end date is Saturday.
	s := BuildSchedule(date(2024, time.January, 5), []domain.Milestone{{Name: "Friday", OffsetDays: 0}}, true)

	assert.Equal(t, date(2024, time.January, 5), s.Entries[0].StartDate)
	assert.Equal(t, time.Saturday, s.Entries[0].EndDate.Weekday())
}

func TestBuildSchedule_IndependentMilestones(t *testing.T) {
	base := date(2024, time.January, 1)
	s := BuildSchedule(base, []domain.Milestone{
		{Name: "Review", OffsetDays: 3},
		{Name: "Review", OffsetDays: 3},
	}, false)

	require.Len(t, s.Entries, 2)
	assert.Equal(t, base.AddDate(0, 0, 3), s.Entries[0].StartDate)
	assert.Equal(t, s.Entries[0].StartDate, s.Entries[1].StartDate)
	assert.Equal(t, "Review", s.Entries[1].Name, "duplicate names stay distinct entries")
}

func TestBuildSchedule_PreservesInputOrder(t *testing.T) {
	ms := []domain.Milestone{
		{Name: "Late", OffsetDays: 30},
		{Name: "Early", OffsetDays: 1},
		{Name: "Middle", OffsetDays: 10},
	}
	s := BuildSchedule(date(2024, time.January, 1), ms, true)

	require.Len(t, s.Entries, len(ms))
	for i, m := range ms {
		assert.Equal(t, m.Name, s.Entries[i].Name)
		assert.Equal(t, m.OffsetDays, s.Entries[i].OffsetDays)
	}
}

func TestBuild_FromPlan(t *testing.T) {
	p := testutil.NewTestPlan()
	s := Build(p)

	require.Len(t, s.Entries, 5)
	assert.Equal(t, date(2024, time.January, 21), s.Entries[4].StartDate)
	assert.Equal(t, p.BaseDate, s.BaseDate)
}

// TestBuildSchedule_Invariants property-tests the builder: length and order
// follow the input and every entry spans exactly one day.
func TestBuildSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 200; trial++ {
		base := date(2020, time.January, 1).AddDate(0, 0, rng.Intn(3000))
		business := rng.Intn(2) == 1
		n := rng.Intn(domain.MaxMilestones) + 1

		ms := make([]domain.Milestone, n)
		for i := range ms {
			ms[i] = domain.Milestone{Name: "m" + strconv.Itoa(i), OffsetDays: rng.Intn(200)}
		}

		s := BuildSchedule(base, ms, business)

		require.Len(t, s.Entries, n, "trial %d", trial)
		for i, e := range s.Entries {
			assert.Equal(t, ms[i].Name, e.Name, "trial %d entry %d order", trial, i)
			assert.Equal(t, 24*time.Hour, e.EndDate.Sub(e.StartDate), "trial %d entry %d span", trial, i)
			assert.False(t, e.StartDate.Before(base), "trial %d entry %d precedes base", trial, i)
			if business && e.OffsetDays > 0 {
				assert.True(t, IsBusinessDay(e.StartDate), "trial %d entry %d on weekend", trial, i)
			}
		}
	}
}
