package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusinessDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"february 2024 leap year", 2024, 2, 21},
		{"february 2023", 2023, 2, 20},
		{"march 2024", 2024, 3, 21},
		{"june 2024 starts saturday", 2024, 6, 20},
		{"december 2025", 2025, 12, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BusinessDaysInMonth(tt.year, tt.month))
		})
	}
}

func TestMonthRange(t *testing.T) {
	t.Parallel()

	start, end := MonthRange(2024, 2)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 29, end.Day(), "leap february ends on the 29th")
	assert.Equal(t, time.February, end.Month())
	assert.True(t, end.Before(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBusinessDaysBetween(t *testing.T) {
	t.Parallel()

	mon := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	fri := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	sat := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, BusinessDaysBetween(mon, fri))
	assert.Equal(t, 5, BusinessDaysBetween(mon, sun), "trailing weekend adds nothing")
	assert.Equal(t, 0, BusinessDaysBetween(sat, sun))
	assert.Equal(t, 1, BusinessDaysBetween(mon, mon), "endpoints inclusive")
	assert.Equal(t, 0, BusinessDaysBetween(fri, mon), "inverted range counts zero")
}

func TestIsBusinessDay(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBusinessDay(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsBusinessDay(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsBusinessDay(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))
}
