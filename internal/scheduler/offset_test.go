package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDay(t *testing.T) {
	// 2024-01-01 is a Monday.
	for d := 1; d <= 7; d++ {
		day := date(2024, time.January, d)
		want := d <= 5
		assert.Equal(t, want, IsBusinessDay(day), "%s", day.Weekday())
	}
}

func TestAddBusinessDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"zero returns start", date(2024, time.January, 1), 0, date(2024, time.January, 1)},
		{"zero on weekend returns start", date(2024, time.January, 6), 0, date(2024, time.January, 6)},
		{"monday plus five skips one weekend", date(2024, time.January, 1), 5, date(2024, time.January, 8)},
		{"monday plus four stays in week", date(2024, time.January, 1), 4, date(2024, time.January, 5)},
		{"saturday plus one lands monday", date(2024, time.January, 6), 1, date(2024, time.January, 8)},
		{"sunday plus one lands monday", date(2024, time.January, 7), 1, date(2024, time.January, 8)},
		{"friday plus one lands monday", date(2024, time.January, 5), 1, date(2024, time.January, 8)},
		{"ten spans two weekends", date(2024, time.January, 1), 10, date(2024, time.January, 15)},
		{"crosses year end", date(2023, time.December, 29), 1, date(2024, time.January, 1)},
		{"negative treated as zero", date(2024, time.January, 3), -4, date(2024, time.January, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddBusinessDays(tt.start, tt.n))
		})
	}
}

func TestAddCalendarDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"zero", date(2024, time.January, 1), 0, date(2024, time.January, 1)},
		{"five", date(2024, time.January, 1), 5, date(2024, time.January, 6)},
		{"leap day", date(2024, time.February, 28), 1, date(2024, time.February, 29)},
		{"month end", date(2023, time.February, 28), 1, date(2023, time.March, 1)},
		{"year end", date(2023, time.December, 31), 1, date(2024, time.January, 1)},
		{"full year", date(2024, time.January, 1), 366, date(2025, time.January, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddCalendarDays(tt.start, tt.n))
		})
	}
}
