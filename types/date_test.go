package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertDate(t *testing.T, d Date, y, mo, day, h, mi, s int) {
	t.Helper()
	assert.Equal(t,
		[6]int{y, mo, day, h, mi, s},
		[6]int{d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second()},
		"date %s", d)
}

func TestNewDate_ClampsDay(t *testing.T) {
	assertDate(t, NewDate(2023, 2, 31, 0, 0, 0), 2023, 2, 28, 0, 0, 0)
	assertDate(t, NewDate(2024, 2, 30, 0, 0, 0), 2024, 2, 29, 0, 0, 0)
	assertDate(t, NewDate(2024, 4, 31, 10, 0, 0), 2024, 4, 30, 10, 0, 0)
	assertDate(t, NewDate(2024, 1, 1, 24, 0, 0), 2024, 1, 2, 0, 0, 0)
}

func TestDate_Stamps(t *testing.T) {
	assert.Equal(t, int64(0), NewDate(1970, 1, 1, 8, 0, 0).Stamp())
	assert.Equal(t, int64(0), NewDate(1970, 1, 1, 0, 0, 0).UTCStamp())
	assert.Equal(t, int64(0), NewUTCDate(1970, 1, 1, 0, 0, 0).Stamp())
	assert.Equal(t, int64(946656000), NewDate(2000, 1, 1, 0, 0, 0).Stamp())

	d := DateFromStamp(0, false)
	assertDate(t, d, 1970, 1, 1, 8, 0, 0)
	assert.False(t, d.IsUTC())

	d = DateFromStamp(0, true)
	assertDate(t, d, 1970, 1, 1, 0, 0, 0)
	assert.True(t, d.IsUTC())
}

func TestDate_Zone(t *testing.T) {
	local := NewDate(2000, 1, 1, 0, 0, 0)
	assert.Equal(t, 8, local.TimeZone())
	assert.Equal(t, int64(-28800), local.TimeZoneOffset())

	utc := local.ToUTC()
	assert.Equal(t, 0, utc.TimeZone())
	assertDate(t, utc, 1999, 12, 31, 16, 0, 0)
	assert.Equal(t, local.Stamp(), utc.Stamp())
}

func TestDate_Accessors(t *testing.T) {
	d := NewDate(2024, 1, 1, 0, 0, 0)
	assert.Equal(t, 1, d.Week(), "2024-01-01 is a Monday")
	assert.Equal(t, 7, NewDate(2024, 1, 7, 0, 0, 0).Week())
	assert.Equal(t, 366, NewDate(2024, 12, 31, 0, 0, 0).YearDay())
	assert.True(t, d.IsLeapYear())
	assert.False(t, NewDate(1900, 6, 1, 0, 0, 0).IsLeapYear())
	assert.True(t, NewDate(2024, 2, 29, 0, 0, 0).IsLastDayOfMonth())
	assert.False(t, NewDate(2023, 2, 27, 0, 0, 0).IsLastDayOfMonth())
	assert.Equal(t, 360, NewDate(2000, 1, 15, 0, 0, 0).UTCFullMonths())
	assert.Equal(t, 0, NewDate(1970, 1, 1, 0, 0, 0).UTCFullMonths())
	assert.Equal(t, 30, NewDate(2000, 12, 31, 0, 0, 0).UTCFullYears())
}

func TestDate_SetWraps(t *testing.T) {
	d := NewDate(2000, 1, 1, 0, 0, 0)
	d.Set(2024, 13, 32, 25, 61, -5)
	assertDate(t, d, 2024, 1, 1, 1, 1, 0)

	d.SetDate(2020, 2, 30)
	assertDate(t, d, 2020, 2, 29, 1, 1, 0)

	d.SetYear(2021)
	assertDate(t, d, 2021, 2, 28, 1, 1, 0)

	d.SetMonth(14).SetDay(33).SetHour(-1).SetMinute(59).SetSecond(60)
	assertDate(t, d, 2021, 2, 1, 0, 59, 0)
}

func TestDate_ZeroSet(t *testing.T) {
	base := NewDate(2024, 7, 19, 15, 4, 5)
	cases := []struct {
		period Period
		want   [6]int
	}{
		{Second, [6]int{2024, 7, 19, 15, 4, 5}},
		{Minute, [6]int{2024, 7, 19, 15, 4, 0}},
		{Hour, [6]int{2024, 7, 19, 15, 0, 0}},
		{Day, [6]int{2024, 7, 19, 0, 0, 0}},
		{Week, [6]int{2024, 7, 15, 0, 0, 0}},
		{Month, [6]int{2024, 7, 1, 0, 0, 0}},
		{Year, [6]int{2024, 1, 1, 0, 0, 0}},
	}
	for _, c := range cases {
		d := base
		d.ZeroSet(c.period)
		assertDate(t, d, c.want[0], c.want[1], c.want[2], c.want[3], c.want[4], c.want[5])
	}

	// Sunday belongs to the week that started on the previous Monday.
	d := NewDate(2024, 1, 7, 23, 59, 59)
	d.ZeroSet(Week)
	assertDate(t, d, 2024, 1, 1, 0, 0, 0)

	// UTC dates: Day is UTC aligned, Week is the local Monday midnight.
	u := NewUTCDate(2024, 1, 3, 12, 0, 0)
	u.ZeroSet(Day)
	assertDate(t, u, 2024, 1, 3, 0, 0, 0)

	u = NewUTCDate(2024, 1, 3, 12, 0, 0)
	u.ZeroSet(Week)
	assert.True(t, u.IsUTC())
	assertDate(t, u, 2023, 12, 31, 16, 0, 0)
}

func TestDate_Add(t *testing.T) {
	d := NewDate(2024, 1, 31, 12, 0, 0)
	d.Add(1, Month)
	assertDate(t, d, 2024, 2, 29, 12, 0, 0)

	d = NewDate(2021, 1, 31, 0, 0, 0)
	d.AddMonth(1)
	assertDate(t, d, 2021, 2, 28, 0, 0, 0)

	d = NewDate(2024, 3, 31, 0, 0, 0)
	d.Add(-1, Month)
	assertDate(t, d, 2024, 2, 29, 0, 0, 0)

	d = NewDate(2023, 11, 30, 0, 0, 0)
	d.AddMonth(26)
	assertDate(t, d, 2026, 1, 30, 0, 0, 0)

	d = NewDate(2024, 2, 29, 0, 0, 0)
	d.Add(4, Year)
	assertDate(t, d, 2028, 2, 29, 0, 0, 0)
	d.AddYear(1)
	assertDate(t, d, 2029, 2, 28, 0, 0, 0)

	d = NewDate(2024, 12, 31, 23, 0, 0)
	d.Add(25, Hour)
	assertDate(t, d, 2025, 1, 2, 0, 0, 0)

	d.Add(-2, Week)
	assertDate(t, d, 2024, 12, 19, 0, 0, 0)

	d.AddDuration(NewDuration(90, Second))
	assertDate(t, d, 2024, 12, 19, 0, 1, 30)

	d.Add(1500, MilliSecond)
	assertDate(t, d, 2024, 12, 19, 0, 1, 31)
}

func TestDate_Diff(t *testing.T) {
	a := NewDate(2015, 1, 1, 0, 0, 0)
	b := NewDate(2014, 12, 30, 0, 0, 0)
	assert.Equal(t, int64(1), a.Diff(b, Year))
	assert.Equal(t, int64(1), a.Diff(b, Month))
	assert.Equal(t, int64(0), a.Diff(b, Week), "both fall in the week of Monday 2014-12-29")
	assert.Equal(t, int64(2), a.Diff(b, Day))
	assert.Equal(t, int64(48), a.Diff(b, Hour))
	assert.Equal(t, int64(-172800), b.Diff(a, Second))
	assert.Equal(t, int64(172800000), a.Diff(b, MilliSecond))

	// Minute and Hour count boundaries crossed.
	x := NewDate(2024, 1, 1, 10, 59, 59)
	y := NewDate(2024, 1, 1, 11, 0, 0)
	assert.Equal(t, int64(1), y.Diff(x, Hour))
	assert.Equal(t, int64(1), y.Diff(x, Minute))
	assert.Equal(t, int64(1), y.Diff(x, Second))

	// Day boundaries follow local midnight.
	assert.Equal(t, int64(1), NewDate(2024, 1, 2, 0, 0, 0).Diff(NewDate(2024, 1, 1, 23, 59, 59), Day))
	assert.Equal(t, int64(1), NewDate(2024, 1, 8, 0, 0, 0).Diff(NewDate(2024, 1, 7, 23, 0, 0), Week))
}

func TestDate_PlusMinusSub(t *testing.T) {
	d := NewDate(2024, 1, 31, 0, 0, 0)
	next := d.Plus(NewDuration(1, Month))
	assertDate(t, next, 2024, 2, 29, 0, 0, 0)
	assertDate(t, d, 2024, 1, 31, 0, 0, 0)

	prev := d.Minus(NewDuration(1, Day))
	assertDate(t, prev, 2024, 1, 30, 0, 0, 0)

	assert.Equal(t, NewDuration(86400, Second), d.Sub(prev))
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, 1, 1, 0, 0, 0)
	b := NewDate(2024, 1, 1, 0, 0, 1)
	assert.True(t, a.Less(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.True(t, a.Equal(NewDate(2024, 1, 1, 0, 0, 0)))

	// Compare looks at fields, not instants.
	assert.False(t, a.Equal(a.ToUTC()))
}

func TestDate_Conversions(t *testing.T) {
	d := NewDate(2000, 1, 1, 0, 0, 0)
	assert.Equal(t, "2000-01-01 00:00:00", d.String())

	tm := d.ToTime()
	assert.Equal(t, d.Stamp(), tm.Stamp())
	assert.Equal(t, int64(0), tm.MicroSeconds())
	assert.True(t, DateOf(tm).Equal(d))
	assert.Equal(t, d.Stamp(), d.ToGo().Unix())
}
