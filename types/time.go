package types

import (
	"fmt"
	"time"
)

const (
	microsPerSecond = 1000000
	secondsPerDay   = 86400
	secondsPerWeek  = 7 * secondsPerDay
)

// Time is a point in time with microsecond precision: Unix seconds plus
// a microsecond part kept in [0, 1000000).
type Time struct {
	sec  int64
	usec int64
}

// Now returns the current wall clock time.
func Now() Time {
	return TimeFromGo(time.Now())
}

// TimeFromGo converts a time.Time, truncating to microseconds.
func TimeFromGo(t time.Time) Time {
	return Time{sec: t.Unix(), usec: int64(t.Nanosecond() / 1000)}
}

// Unix returns the Time of the Unix timestamp stamp.
func Unix(stamp int64) Time {
	return Time{sec: stamp}
}

// NewTime returns the Time of seconds plus microSeconds, the latter
// clamped into [0, 1000000).
func NewTime(seconds, microSeconds int64) Time {
	var t Time
	t.Set(seconds, microSeconds)
	return t
}

// TimeOf returns the Time of d. The microsecond part is zero.
func TimeOf(d Date) Time {
	return Unix(d.Stamp())
}

// ToGo converts t to a time.Time in the local zone.
func (t Time) ToGo() time.Time { return time.Unix(t.sec, t.usec*1000) }

// ToDate returns the local date of t.
func (t Time) ToDate() Date { return DateOf(t) }

// UTCDate returns the UTC date of t.
func (t Time) UTCDate() Date { return DateFromStamp(t.sec, true) }

// Seconds returns the Unix seconds of t.
func (t Time) Seconds() int64 { return t.sec }

// MicroSeconds returns the microsecond part of t, in [0, 1000000).
func (t Time) MicroSeconds() int64 { return t.usec }

// MilliStamp returns t in Unix milliseconds.
func (t Time) MilliStamp() int64 { return t.sec*1000 + t.usec/1000 }

// MicroStamp returns t in Unix microseconds.
func (t Time) MicroStamp() int64 { return t.sec*microsPerSecond + t.usec }

// Stamp returns the Unix timestamp of t.
func (t Time) Stamp() int64 { return t.sec }

// UTCStamp returns Stamp minus the local zone offset.
func (t Time) UTCStamp() int64 { return t.sec - LocalTimeZoneOffset() }

func clampMicros(us int64) int64 {
	switch {
	case us < 0:
		return 0
	case us >= microsPerSecond:
		return microsPerSecond - 1
	default:
		return us
	}
}

// Set replaces both parts of t.
func (t *Time) Set(seconds, microSeconds int64) *Time {
	t.sec = seconds
	t.usec = clampMicros(microSeconds)
	return t
}

// SetSeconds replaces the seconds, keeping the microsecond part.
func (t *Time) SetSeconds(seconds int64) *Time {
	t.sec = seconds
	return t
}

// SetMicroSeconds replaces the microsecond part, clamped into range.
func (t *Time) SetMicroSeconds(microSeconds int64) *Time {
	t.usec = clampMicros(microSeconds)
	return t
}

// ZeroSet truncates t to the start of its period.
//
// Minute and Hour truncate raw epoch seconds, so they align to UTC and
// not to the local clock. Day, Month and Year go through the local Date.
// Week starts on Monday at local midnight.
func (t *Time) ZeroSet(period Period) *Time {
	switch period {
	case MilliSecond:
		t.usec = t.usec / 1000 * 1000
	case Second:
		t.usec = 0
	case Minute:
		t.sec = floorDiv(t.sec, 60) * 60
		t.usec = 0
	case Hour:
		t.sec = floorDiv(t.sec, 3600) * 3600
		t.usec = 0
	case Week:
		// week 0 starts on Monday 1969-12-29
		days := t.UTCFullWeeks()*7 - 3
		t.sec = days*secondsPerDay + LocalTimeZoneOffset()
		t.usec = 0
	case Day, Month, Year:
		d := t.ToDate()
		t.sec = d.ZeroSet(period).Stamp()
		t.usec = 0
	}
	return t
}

// Add adds value units of period to t. Periods up to Week are exact;
// Month and Year go through the local Date and keep the microseconds.
func (t *Time) Add(value int64, period Period) *Time {
	switch period {
	case MicroSecond:
		t.AddMicroSecond(value)
	case MilliSecond:
		t.AddMilliSecond(value)
	case Second:
		t.AddSecond(value)
	case Minute:
		t.AddMinute(value)
	case Hour:
		t.AddHour(value)
	case Day:
		t.AddDay(value)
	case Week:
		t.AddWeek(value)
	case Month, Year:
		d := t.ToDate()
		t.sec = d.Add(value, period).Stamp()
	}
	return t
}

// AddDuration adds dur to t.
func (t *Time) AddDuration(dur Duration) *Time {
	return t.Add(dur.Value, dur.Period)
}

// AddWeek adds value weeks of 604800 seconds.
func (t *Time) AddWeek(value int64) *Time {
	t.sec += value * secondsPerWeek
	return t
}

// AddDay adds value days of 86400 seconds.
func (t *Time) AddDay(value int64) *Time {
	t.sec += value * secondsPerDay
	return t
}

// AddHour adds value hours.
func (t *Time) AddHour(value int64) *Time {
	t.sec += value * 3600
	return t
}

// AddMinute adds value minutes.
func (t *Time) AddMinute(value int64) *Time {
	t.sec += value * 60
	return t
}

// AddSecond adds value seconds.
func (t *Time) AddSecond(value int64) *Time {
	t.sec += value
	return t
}

// AddMilliSecond adds value milliseconds, carrying into the seconds.
func (t *Time) AddMilliSecond(value int64) *Time {
	return t.AddMicroSecond(value * 1000)
}

// AddMicroSecond adds value microseconds, carrying into or borrowing
// from the seconds so the microsecond part stays in range.
func (t *Time) AddMicroSecond(value int64) *Time {
	us := t.usec + value
	carry := floorDiv(us, microsPerSecond)
	t.sec += carry
	t.usec = us - carry*microsPerSecond
	return t
}

// Diff returns t minus other in units of period.
//
// MicroSecond to Second are exact. Minute and Hour count boundaries of
// raw epoch seconds crossed. Day and Week count UTCFullDays and
// UTCFullWeeks crossed. Month and Year compare local calendar positions.
func (t Time) Diff(other Time, period Period) int64 {
	switch period {
	case MicroSecond:
		return t.MicroStamp() - other.MicroStamp()
	case MilliSecond:
		return t.MilliStamp() - other.MilliStamp()
	case Second:
		return t.sec - other.sec
	case Minute:
		return floorDiv(t.sec, 60) - floorDiv(other.sec, 60)
	case Hour:
		return floorDiv(t.sec, 3600) - floorDiv(other.sec, 3600)
	case Day:
		return t.UTCFullDays() - other.UTCFullDays()
	case Week:
		return t.UTCFullWeeks() - other.UTCFullWeeks()
	case Month, Year:
		return t.ToDate().Diff(other.ToDate(), period)
	default:
		return 0
	}
}

// UTCFullMicroSeconds returns the microseconds since the epoch, read on
// the local wall clock.
func (t Time) UTCFullMicroSeconds() int64 {
	return t.UTCStamp()*microsPerSecond + t.usec
}

// UTCFullMilliSeconds returns the milliseconds since the epoch, read on
// the local wall clock.
func (t Time) UTCFullMilliSeconds() int64 {
	return t.UTCStamp()*1000 + t.usec/1000
}

// UTCFullSeconds is the same as UTCStamp.
func (t Time) UTCFullSeconds() int64 { return t.UTCStamp() }

// UTCFullMinutes returns the whole minutes since the epoch.
func (t Time) UTCFullMinutes() int64 { return floorDiv(t.UTCStamp(), 60) }

// UTCFullHours returns the whole hours since the epoch.
func (t Time) UTCFullHours() int64 { return floorDiv(t.UTCStamp(), 3600) }

// UTCFullDays returns the whole days since the epoch.
func (t Time) UTCFullDays() int64 { return floorDiv(t.UTCStamp(), secondsPerDay) }

// UTCFullWeeks returns the index of the Monday-based week since the
// epoch. 1970-01-01 was a Thursday and falls in week 0; earlier weeks
// are negative.
func (t Time) UTCFullWeeks() int64 {
	return floorDiv(t.UTCFullDays()+4-1, 7)
}

// Plus returns a copy of t moved forward by dur.
func (t Time) Plus(dur Duration) Time {
	t.AddDuration(dur)
	return t
}

// Minus returns a copy of t moved back by dur.
func (t Time) Minus(dur Duration) Time {
	t.AddDuration(dur.Neg())
	return t
}

// Sub returns the whole seconds between other and t.
func (t Time) Sub(other Time) Duration {
	return Duration{Value: t.sec - other.sec, Period: Second}
}

// Compare orders times by seconds, then microseconds.
func (t Time) Compare(other Time) int {
	switch {
	case t.sec < other.sec:
		return -1
	case t.sec > other.sec:
		return 1
	case t.usec < other.usec:
		return -1
	case t.usec > other.usec:
		return 1
	default:
		return 0
	}
}

// Less reports whether t is before other.
func (t Time) Less(other Time) bool { return t.Compare(other) < 0 }

// Equal reports whether t and other are the same instant.
func (t Time) Equal(other Time) bool { return t.Compare(other) == 0 }

// String formats t as local "YYYY-MM-DD HH:MM:SS.uuuuuu".
func (t Time) String() string {
	return fmt.Sprintf("%s.%06d", t.ToDate().String(), t.usec)
}

// Format formats the local date of t with a strftime pattern.
func (t Time) Format(pattern string) string {
	return t.ToDate().Format(pattern)
}
