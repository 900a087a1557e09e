package types

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// All tests in this package run in a fixed UTC+8 zone without DST.
func TestMain(m *testing.M) {
	time.Local = time.FixedZone("CST", 8*3600)
	os.Exit(m.Run())
}

func TestLocalTimeZone(t *testing.T) {
	assert.Equal(t, 8, LocalTimeZone())
	assert.Equal(t, int64(-28800), LocalTimeZoneOffset())
}

func TestIsLeapYear(t *testing.T) {
	for year, want := range map[int]bool{
		1900: false,
		2000: true,
		2023: false,
		2024: true,
		2100: false,
		2400: true,
	} {
		assert.Equal(t, want, IsLeapYear(year), "year %d", year)
	}
}

func TestYearMonthDays(t *testing.T) {
	assert.Equal(t, 31, YearMonthDays(2023, 1))
	assert.Equal(t, 28, YearMonthDays(2023, 2))
	assert.Equal(t, 29, YearMonthDays(2024, 2))
	assert.Equal(t, 30, YearMonthDays(2024, 11))
	assert.Equal(t, 0, YearMonthDays(2024, 0))
	assert.Equal(t, 0, YearMonthDays(2024, 13))
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 7, 1},
		{6, 7, 0},
		{0, 7, 0},
		{-1, 7, -1},
		{-7, 7, -1},
		{-8, 7, -2},
		{-1, 1000000, -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, floorDiv(c.a, c.b), "%d/%d", c.a, c.b)
	}
}
