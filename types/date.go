package types

import (
	"fmt"
	"time"
)

// Date is a calendar date with second precision, interpreted either in
// the process local zone or in UTC.
//
// The day of month is always clamped to the length of its month: every
// mutator re-normalizes the calendar fields before returning. Dates are
// plain values and copy by assignment. Mutators use pointer receivers
// and return the receiver so calls can be chained.
type Date struct {
	t   time.Time
	utc bool
}

// NowDate returns the current local date.
func NowDate() Date {
	return DateFromStamp(time.Now().Unix(), false)
}

// DateFromStamp returns the date of the Unix timestamp stamp, in UTC when
// utc is set and in the local zone otherwise.
func DateFromStamp(stamp int64, utc bool) Date {
	d := Date{utc: utc}
	d.set(stamp)
	return d
}

// DateOf returns the local date of t, dropping its microseconds.
func DateOf(t Time) Date {
	return DateFromStamp(t.Stamp(), false)
}

// NewDate returns the local date with the given fields. A day past the
// end of the month is clamped to the last day; other overflow carries
// into the next field the way time.Date does.
func NewDate(year, month, day, hour, minute, second int) Date {
	d := NowDate()
	d.assign(year, month, day, hour, minute, second)
	return d
}

// NewUTCDate is NewDate for a UTC date.
func NewUTCDate(year, month, day, hour, minute, second int) Date {
	d := DateFromStamp(time.Now().Unix(), true)
	d.assign(year, month, day, hour, minute, second)
	return d
}

func (d Date) location() *time.Location {
	if d.utc {
		return time.UTC
	}
	return time.Local
}

func (d *Date) set(stamp int64) {
	d.t = time.Unix(stamp, 0).In(d.location())
}

func (d *Date) assign(year, month, day, hour, minute, second int) {
	if days := YearMonthDays(year, month); days > 0 && day > days {
		day = days
	}
	d.t = time.Date(year, time.Month(month), day, hour, minute, second, 0, d.location())
}

// Year returns the year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the month in [1,12].
func (d Date) Month() int { return int(d.t.Month()) }

// Day returns the day of month in [1,31].
func (d Date) Day() int { return d.t.Day() }

// Hour returns the hour in [0,23].
func (d Date) Hour() int { return d.t.Hour() }

// Minute returns the minute in [0,59].
func (d Date) Minute() int { return d.t.Minute() }

// Second returns the second in [0,60].
func (d Date) Second() int { return d.t.Second() }

// Week returns the day of week in [1,7], Monday being 1 and Sunday 7.
func (d Date) Week() int {
	if wd := int(d.t.Weekday()); wd > 0 {
		return wd
	}
	return 7
}

// YearDay returns the day of year in [1,366].
func (d Date) YearDay() int { return d.t.YearDay() }

// IsUTC reports whether d is interpreted in UTC.
func (d Date) IsUTC() bool { return d.utc }

// Stamp returns the Unix timestamp of d in its own zone.
func (d Date) Stamp() int64 { return d.t.Unix() }

// UTCStamp returns Stamp minus the local zone offset: for a local date
// it reads the wall clock fields as if they were UTC, so local
// 1970-01-01 00:00:00 gives 0.
func (d Date) UTCStamp() int64 { return d.Stamp() - LocalTimeZoneOffset() }

// TimeZone returns the hour offset from UTC of the zone of d.
func (d Date) TimeZone() int {
	_, offset := d.t.Zone()
	return offset / 3600
}

// TimeZoneOffset returns the negated zone offset of d in seconds.
func (d Date) TimeZoneOffset() int64 { return int64(d.TimeZone()) * -3600 }

// ToUTC returns the UTC date of the same instant.
func (d Date) ToUTC() Date { return DateFromStamp(d.Stamp(), true) }

// ToTime returns the Time of the same instant.
func (d Date) ToTime() Time { return TimeOf(d) }

// ToGo returns d as a time.Time in the zone of d.
func (d Date) ToGo() time.Time { return d.t }

func wrapMonth(month int) int {
	month = (month - 1) % 12
	if month < 0 {
		month = 0
	}
	return month + 1
}

func wrapDay(day int) int {
	day %= 32
	if day < 1 {
		day = 1
	}
	return day
}

func wrapClock(v, n int) int {
	v %= n
	if v < 0 {
		v = 0
	}
	return v
}

// Set replaces all calendar fields. Out of range values wrap instead of
// being rejected: month 13 becomes January, day 32 becomes 1, hour 25
// becomes 1, and negative values floor to the lowest valid value.
func (d *Date) Set(year, month, day, hour, minute, second int) *Date {
	d.assign(year, wrapMonth(month), wrapDay(day),
		wrapClock(hour, 24), wrapClock(minute, 60), wrapClock(second, 60))
	return d
}

// SetDate replaces year, month and day with the same wrapping as Set.
func (d *Date) SetDate(year, month, day int) *Date {
	d.assign(year, wrapMonth(month), wrapDay(day), d.Hour(), d.Minute(), d.Second())
	return d
}

// SetYear replaces the year, clamping Feb 29 in a common year.
func (d *Date) SetYear(year int) *Date {
	d.assign(year, d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second())
	return d
}

// SetMonth replaces the month, wrapping it into [1,12].
func (d *Date) SetMonth(month int) *Date {
	d.assign(d.Year(), wrapMonth(month), d.Day(), d.Hour(), d.Minute(), d.Second())
	return d
}

// SetDay replaces the day of month, wrapping it modulo 32 and clamping
// it to the month length.
func (d *Date) SetDay(day int) *Date {
	d.assign(d.Year(), d.Month(), wrapDay(day), d.Hour(), d.Minute(), d.Second())
	return d
}

// SetHour replaces the hour, wrapping it into [0,23].
func (d *Date) SetHour(hour int) *Date {
	d.assign(d.Year(), d.Month(), d.Day(), wrapClock(hour, 24), d.Minute(), d.Second())
	return d
}

// SetMinute replaces the minute, wrapping it into [0,59].
func (d *Date) SetMinute(minute int) *Date {
	d.assign(d.Year(), d.Month(), d.Day(), d.Hour(), wrapClock(minute, 60), d.Second())
	return d
}

// SetSecond replaces the second, wrapping it into [0,59].
func (d *Date) SetSecond(second int) *Date {
	d.assign(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), wrapClock(second, 60))
	return d
}

// ZeroSet truncates d to the start of its period. Week starts on Monday.
// MicroSecond, MilliSecond and Second are no-ops.
//
// Minute through Day, Month and Year truncate d's own fields, so a UTC
// tagged Date lands on a UTC boundary. Week goes through Time and always
// lands on Monday midnight in the local zone: 2024-01-03 12:00 UTC
// becomes 2023-12-31 16:00 UTC when the local zone is UTC+8.
func (d *Date) ZeroSet(period Period) *Date {
	switch period {
	case Minute:
		d.assign(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), 0)
	case Hour:
		d.assign(d.Year(), d.Month(), d.Day(), d.Hour(), 0, 0)
	case Day:
		d.assign(d.Year(), d.Month(), d.Day(), 0, 0, 0)
	case Week:
		t := d.ToTime()
		d.set(t.ZeroSet(Week).Stamp())
	case Month:
		d.assign(d.Year(), d.Month(), 1, 0, 0, 0)
	case Year:
		d.assign(d.Year(), 1, 1, 0, 0, 0)
	}
	return d
}

// Add adds value units of period to d. Periods up to Week are added as
// exact seconds; Month and Year move the calendar fields and clamp the
// day to the target month.
func (d *Date) Add(value int64, period Period) *Date {
	switch period {
	case MicroSecond, MilliSecond, Second, Minute, Hour, Day, Week:
		t := d.ToTime()
		d.set(t.Add(value, period).Stamp())
	case Month:
		d.AddMonth(int(value))
	case Year:
		d.AddYear(int(value))
	}
	return d
}

// AddDuration adds dur to d.
func (d *Date) AddDuration(dur Duration) *Date {
	return d.Add(dur.Value, dur.Period)
}

// AddYear moves d by value years. Feb 29 becomes Feb 28 in a common year.
func (d *Date) AddYear(value int) *Date {
	year := d.Year() + value
	d.assign(year, d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second())
	return d
}

// AddMonth moves d by value months, carrying into the year. The day is
// clamped to the target month, so Jan 31 + 1 month is Feb 28 or 29.
func (d *Date) AddMonth(value int) *Date {
	months := int64(d.Month()-1) + int64(value)
	year := d.Year() + int(floorDiv(months, 12))
	month := int(months-floorDiv(months, 12)*12) + 1
	d.assign(year, month, d.Day(), d.Hour(), d.Minute(), d.Second())
	return d
}

// Diff returns d minus other in units of period.
//
// Up to Hour the result is computed from timestamps, with Minute and Hour
// counting boundaries crossed rather than whole elapsed units. Day and
// Week count epoch days and weeks crossed. Month and Year compare calendar
// positions: 2015-01-01 minus 2014-12-30 is one Year.
func (d Date) Diff(other Date, period Period) int64 {
	switch period {
	case MicroSecond:
		return (d.Stamp() - other.Stamp()) * 1000000
	case MilliSecond:
		return (d.Stamp() - other.Stamp()) * 1000
	case Second:
		return d.Stamp() - other.Stamp()
	case Minute:
		return floorDiv(d.Stamp(), 60) - floorDiv(other.Stamp(), 60)
	case Hour:
		return floorDiv(d.Stamp(), 3600) - floorDiv(other.Stamp(), 3600)
	case Day, Week:
		return d.ToTime().Diff(other.ToTime(), period)
	case Month:
		return int64(d.Year()*12 + d.Month() - other.Year()*12 - other.Month())
	case Year:
		return int64(d.Year() - other.Year())
	default:
		return 0
	}
}

// UTCFullMonths returns the number of months since January 1970.
func (d Date) UTCFullMonths() int { return (d.Year()-1970)*12 + d.Month() - 1 }

// UTCFullYears returns the number of years since 1970.
func (d Date) UTCFullYears() int { return d.Year() - 1970 }

// IsLeapYear reports whether the year of d is a leap year.
func (d Date) IsLeapYear() bool { return IsLeapYear(d.Year()) }

// IsLastDayOfMonth reports whether d falls on the last day of its month.
func (d Date) IsLastDayOfMonth() bool {
	return d.Day() >= YearMonthDays(d.Year(), d.Month())
}

// Plus returns a copy of d moved forward by dur.
func (d Date) Plus(dur Duration) Date {
	d.AddDuration(dur)
	return d
}

// Minus returns a copy of d moved back by dur.
func (d Date) Minus(dur Duration) Date {
	d.AddDuration(dur.Neg())
	return d
}

// Sub returns the elapsed seconds between other and d.
func (d Date) Sub(other Date) Duration {
	return Duration{Value: d.Stamp() - other.Stamp(), Period: Second}
}

// Compare orders dates by their calendar fields, from year down to
// second. The zone is ignored: a UTC and a local date of the same
// instant usually compare unequal.
func (d Date) Compare(other Date) int {
	a := [...]int{d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second()}
	b := [...]int{other.Year(), other.Month(), other.Day(), other.Hour(), other.Minute(), other.Second()}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether d sorts before other by calendar fields.
func (d Date) Less(other Date) bool { return d.Compare(other) < 0 }

// Equal reports whether d and other have identical calendar fields.
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// String formats d as "YYYY-MM-DD HH:MM:SS".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second())
}

// Format formats d with a strftime pattern. It returns "" when the
// pattern is invalid or the result does not fit MaxFormatLength.
func (d Date) Format(pattern string) string {
	return strftime(d, pattern)
}
