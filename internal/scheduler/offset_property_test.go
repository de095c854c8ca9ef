package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestAddBusinessDays_Invariants property-tests the business-day offset:
// a positive offset always lands on a weekday, zero is the identity, and
// exactly n weekdays lie in (start, result].
func TestAddBusinessDays_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	epoch := date(2000, time.January, 1)

	for trial := 0; trial < 500; trial++ {
		start := epoch.AddDate(0, 0, rng.Intn(365*40))
		n := rng.Intn(120)

		got := AddBusinessDays(start, n)

		if n == 0 {
			assert.Equal(t, start, got, "trial %d: zero offset must return start", trial)
			continue
		}

		assert.True(t, IsBusinessDay(got),
			"trial %d: %s +%d landed on %s", trial, domain.FormatDate(start), n, got.Weekday())

		counted := 0
		for d := start.AddDate(0, 0, 1); !d.After(got); d = d.AddDate(0, 0, 1) {
			if IsBusinessDay(d) {
				counted++
			}
		}
		assert.Equal(t, n, counted, "trial %d: weekdays between %s and %s", trial, domain.FormatDate(start), domain.FormatDate(got))
	}
}

// TestAddBusinessDays_MatchesDayByDayWalk compares the week-skipping
// calculation with a plain walk over every calendar day.
func TestAddBusinessDays_MatchesDayByDayWalk(t *testing.T) {
	walk := func(start time.Time, n int) time.Time {
		current := start
		for n > 0 {
			current = current.AddDate(0, 0, 1)
			if IsBusinessDay(current) {
				n--
			}
		}
		return current
	}

	rng := rand.New(rand.NewSource(2024))
	epoch := date(2000, time.January, 1)

	for trial := 0; trial < 500; trial++ {
		start := epoch.AddDate(0, 0, rng.Intn(365*40))
		n := rng.Intn(400)
		assert.Equal(t, walk(start, n), AddBusinessDays(start, n),
			"trial %d: %s (%s) +%d", trial, domain.FormatDate(start), start.Weekday(), n)
	}

	// Weekend starts with offsets that are whole weeks of weekdays.
	for _, start := range []time.Time{date(2024, time.January, 6), date(2024, time.January, 7)} {
		for _, n := range []int{5, 10, 25, domain.MaxOffsetDays} {
			assert.Equal(t, walk(start, n), AddBusinessDays(start, n), "%s +%d", domain.FormatDate(start), n)
		}
	}
}

// TestAddCalendarDays_Invariants checks the calendar offset against the
// elapsed wall-clock days, which holds exactly for UTC dates.
func TestAddCalendarDays_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	epoch := date(1990, time.January, 1)

	for trial := 0; trial < 500; trial++ {
		start := epoch.AddDate(0, 0, rng.Intn(365*60))
		n := rng.Intn(1000)

		got := AddCalendarDays(start, n)

		assert.Equal(t, time.Duration(n)*24*time.Hour, got.Sub(start), "trial %d", trial)
	}
}
