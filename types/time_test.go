package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTime_ClampsMicros(t *testing.T) {
	assert.Equal(t, int64(999999), NewTime(5, 1500000).MicroSeconds())
	assert.Equal(t, int64(0), NewTime(5, -1).MicroSeconds())

	var tm Time
	tm.Set(10, 42)
	assert.Equal(t, int64(10), tm.Seconds())
	assert.Equal(t, int64(42), tm.MicroSeconds())
	tm.SetSeconds(11).SetMicroSeconds(2000000)
	assert.Equal(t, NewTime(11, 999999), tm)
}

func TestTime_Stamps(t *testing.T) {
	tm := NewTime(1, 234567)
	assert.Equal(t, int64(1), tm.Stamp())
	assert.Equal(t, int64(1234), tm.MilliStamp())
	assert.Equal(t, int64(1234567), tm.MicroStamp())
	assert.Equal(t, int64(28801), tm.UTCStamp())
	assert.Equal(t, int64(28801234), tm.UTCFullMilliSeconds())
	assert.Equal(t, int64(28801234567), tm.UTCFullMicroSeconds())
	assert.Equal(t, int64(28801), tm.UTCFullSeconds())
	assert.Equal(t, int64(480), tm.UTCFullMinutes())
	assert.Equal(t, int64(8), tm.UTCFullHours())

	now := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.Local)
	got := TimeFromGo(now)
	assert.Equal(t, now.Unix(), got.Seconds())
	assert.Equal(t, int64(123456), got.MicroSeconds())
	assert.True(t, got.ToGo().Equal(now.Truncate(time.Microsecond)))
}

func TestTime_UTCFullDaysAndWeeks(t *testing.T) {
	localMidnight := int64(-28800) // 1970-01-01 00:00:00 UTC+8
	assert.Equal(t, int64(0), Unix(localMidnight).UTCFullDays())
	assert.Equal(t, int64(-1), Unix(localMidnight-1).UTCFullDays())

	cases := []struct {
		date string
		want int64
	}{
		{"1970-01-01", 0},
		{"1969-12-29", 0},
		{"1969-12-28", -1},
		{"1969-12-22", -1},
		{"1969-12-21", -2},
		{"1970-01-04", 0},
		{"1970-01-05", 1},
		{"2024-01-01", 2818},
	}
	for _, c := range cases {
		day, err := time.ParseInLocation("2006-01-02", c.date, time.Local)
		assert.NoError(t, err)
		assert.Equal(t, c.want, TimeFromGo(day).UTCFullWeeks(), c.date)
	}

	assert.Equal(t, int64(0), Unix(0).UTCFullWeeks(), "epoch instant")
	assert.Equal(t, int64(0), Unix(0).UTCFullDays())
}

func TestTime_Add(t *testing.T) {
	tm := NewTime(0, 999999)
	tm.AddMicroSecond(1)
	assert.Equal(t, NewTime(1, 0), tm)

	tm = NewTime(0, 0)
	tm.AddMicroSecond(-1)
	assert.Equal(t, NewTime(-1, 999999), tm)

	tm = NewTime(0, 600000)
	tm.AddMilliSecond(1500)
	assert.Equal(t, NewTime(2, 100000), tm)

	tm = NewTime(0, 5)
	tm.Add(1, Week).Add(1, Day).Add(1, Hour).Add(1, Minute).Add(1, Second)
	assert.Equal(t, NewTime(604800+86400+3600+60+1, 5), tm)

	tm.AddDuration(NewDuration(-1, Week))
	assert.Equal(t, NewTime(86400+3600+60+1, 5), tm)
}

func TestTime_AddMonthKeepsMicros(t *testing.T) {
	start := NewTime(NewDate(2024, 1, 31, 0, 0, 0).Stamp(), 42)
	start.Add(1, Month)
	assert.Equal(t, NewDate(2024, 2, 29, 0, 0, 0).Stamp(), start.Stamp())
	assert.Equal(t, int64(42), start.MicroSeconds())

	start.Add(-1, Year)
	assert.Equal(t, NewDate(2023, 2, 28, 0, 0, 0).Stamp(), start.Stamp())
	assert.Equal(t, int64(42), start.MicroSeconds())
}

func TestTime_ZeroSet(t *testing.T) {
	tm := NewTime(10, 123456)
	tm.ZeroSet(MilliSecond)
	assert.Equal(t, NewTime(10, 123000), tm)
	tm.ZeroSet(Second)
	assert.Equal(t, NewTime(10, 0), tm)

	tm = Unix(125)
	tm.ZeroSet(Minute)
	assert.Equal(t, Unix(120), tm)

	tm = NewTime(-1, 5)
	tm.ZeroSet(Hour)
	assert.Equal(t, Unix(-3600), tm)

	wed := NewTime(NewDate(2024, 1, 3, 15, 4, 5).Stamp(), 777)
	day := wed
	day.ZeroSet(Day)
	assert.Equal(t, Unix(NewDate(2024, 1, 3, 0, 0, 0).Stamp()), day)

	week := wed
	week.ZeroSet(Week)
	assert.Equal(t, Unix(NewDate(2024, 1, 1, 0, 0, 0).Stamp()), week)

	month := wed
	month.ZeroSet(Month)
	assert.Equal(t, Unix(NewDate(2024, 1, 1, 0, 0, 0).Stamp()), month)

	year := NewTime(NewDate(2024, 8, 3, 1, 0, 0).Stamp(), 1)
	year.ZeroSet(Year)
	assert.Equal(t, Unix(NewDate(2024, 1, 1, 0, 0, 0).Stamp()), year)
}

func TestTime_Diff(t *testing.T) {
	assert.Equal(t, int64(0), Unix(119).Diff(Unix(60), Minute))
	assert.Equal(t, int64(2), Unix(120).Diff(Unix(59), Minute))
	assert.Equal(t, int64(0), Unix(59).Diff(Unix(0), Minute))
	assert.Equal(t, int64(1), Unix(0).Diff(Unix(-1), Hour))
	assert.Equal(t, int64(-1), NewTime(0, 0).Diff(NewTime(0, 1), MicroSecond))
	assert.Equal(t, int64(1), NewTime(1, 0).Diff(NewTime(0, 999999), MilliSecond))
	assert.Equal(t, int64(3), Unix(3).Diff(Unix(0), Second))

	before := Unix(NewDate(2024, 1, 1, 23, 59, 59).Stamp())
	after := Unix(NewDate(2024, 1, 2, 0, 0, 0).Stamp())
	assert.Equal(t, int64(1), after.Diff(before, Day))
	assert.Equal(t, int64(0), after.Diff(before, Week))

	jan := Unix(NewDate(2014, 12, 30, 0, 0, 0).Stamp())
	feb := Unix(NewDate(2015, 1, 1, 0, 0, 0).Stamp())
	assert.Equal(t, int64(1), feb.Diff(jan, Year))
	assert.Equal(t, int64(1), feb.Diff(jan, Month))
}

func TestTime_CompareAndString(t *testing.T) {
	a, b := NewTime(5, 1), NewTime(5, 2)
	assert.True(t, a.Less(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.True(t, a.Equal(NewTime(5, 1)))
	assert.Equal(t, -1, Unix(4).Compare(a))

	assert.Equal(t, "1970-01-01 08:00:00.000005", NewTime(0, 5).String())
	assert.Equal(t, "1970-01-01 08:00:00", NewTime(0, 5).Format(DefaultPattern))
}

func TestTime_PlusMinusSub(t *testing.T) {
	tm := NewTime(100, 10)
	assert.Equal(t, NewTime(160, 10), tm.Plus(NewDuration(1, Minute)))
	assert.Equal(t, NewTime(40, 10), tm.Minus(NewDuration(1, Minute)))
	assert.Equal(t, NewTime(100, 10), tm, "Plus and Minus do not modify the receiver")
	assert.Equal(t, NewDuration(60, Second), tm.Sub(Unix(40)))
}

func TestTime_Conversions(t *testing.T) {
	tm := NewTime(0, 5)
	assertDate(t, tm.ToDate(), 1970, 1, 1, 8, 0, 0)
	assertDate(t, tm.UTCDate(), 1970, 1, 1, 0, 0, 0)
	assert.True(t, tm.UTCDate().IsUTC())
	assert.Equal(t, Unix(946656000), TimeOf(NewDate(2000, 1, 1, 0, 0, 0)))
}
