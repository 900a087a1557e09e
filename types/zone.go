package types

import (
	"sync"
	"time"
)

// The local offset is sampled once per process. A host timezone change
// after the first call is not observed until restart.
var localZone struct {
	once  sync.Once
	hours int
}

// LocalTimeZone returns the hour offset of the process local zone from
// UTC, e.g. 8 for UTC+8.
func LocalTimeZone() int {
	localZone.once.Do(func() {
		_, offset := time.Now().In(time.Local).Zone()
		localZone.hours = offset / 3600
	})
	return localZone.hours
}

// LocalTimeZoneOffset returns the negated local offset in seconds,
// e.g. -28800 for UTC+8.
func LocalTimeZoneOffset() int64 {
	return int64(LocalTimeZone()) * -3600
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%400 == 0 || year%100 != 0)
}

// YearMonthDays returns the number of days in month of year, or 0 if
// month is outside [1,12].
func YearMonthDays(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
