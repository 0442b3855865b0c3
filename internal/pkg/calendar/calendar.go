// Package calendar provides business-day arithmetic over the proleptic
// Gregorian calendar. A business day is Monday through Friday; weekends are
// excluded unconditionally (no holiday calendar).
package calendar

import "time"

// MonthRange returns the first and last instant of the given month in UTC.
// The end bound is inclusive (last nanosecond of the last day), so records
// timestamped anywhere on the final day fall inside the range.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// IsBusinessDay reports whether t falls on a Monday-Friday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BusinessDaysInMonth counts Monday-Friday days in the month, both endpoints
// inclusive.
func BusinessDaysInMonth(year, month int) int {
	start, end := MonthRange(year, month)
	return BusinessDaysBetween(start, end)
}

// BusinessDaysBetween counts Monday-Friday calendar days in [start, end],
// inclusive of both endpoints. Returns 0 when end precedes start.
func BusinessDaysBetween(start, end time.Time) int {
	d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	count := 0
	for !d.After(last) {
		if IsBusinessDay(d) {
			count++
		}
		d = d.AddDate(0, 0, 1)
	}
	return count
}
