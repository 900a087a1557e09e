package types

// DateValue is a wire-safe representation of a Date as its calendar
// fields plus the UTC tag.
type DateValue struct {
	Year   int32 `cramberry:"1"`
	Month  int32 `cramberry:"2"`
	Day    int32 `cramberry:"3"`
	Hour   int32 `cramberry:"4"`
	Minute int32 `cramberry:"5"`
	Second int32 `cramberry:"6"`
	UTC    bool  `cramberry:"7"`
}

// DateToValue converts a Date to a DateValue.
func DateToValue(d Date) DateValue {
	return DateValue{
		Year:   int32(d.Year()),
		Month:  int32(d.Month()),
		Day:    int32(d.Day()),
		Hour:   int32(d.Hour()),
		Minute: int32(d.Minute()),
		Second: int32(d.Second()),
		UTC:    d.IsUTC(),
	}
}

// ToDate converts a DateValue to a Date, normalizing the fields the
// same way NewDate does.
func (v DateValue) ToDate() Date {
	if v.UTC {
		return NewUTCDate(int(v.Year), int(v.Month), int(v.Day), int(v.Hour), int(v.Minute), int(v.Second))
	}
	return NewDate(int(v.Year), int(v.Month), int(v.Day), int(v.Hour), int(v.Minute), int(v.Second))
}

// TimeValue is a wire-safe representation of a Time: seconds since
// the Unix epoch plus a microsecond offset.
type TimeValue struct {
	Seconds int64 `cramberry:"1"`
	Micros  int32 `cramberry:"2"`
}

// TimeToValue converts a Time to a TimeValue.
func TimeToValue(t Time) TimeValue {
	return TimeValue{Seconds: t.Seconds(), Micros: int32(t.MicroSeconds())}
}

// ToTime converts a TimeValue to a Time.
func (v TimeValue) ToTime() Time {
	return NewTime(v.Seconds, int64(v.Micros))
}

// InstantKind says which values of an Instant are meaningful. Zero
// valued DateValue and TimeValue fields are valid instants (the Unix
// epoch), so presence is never inferred from the values themselves.
type InstantKind uint8

const (
	// KindNone marks an empty Instant. Requests carrying it are rejected.
	KindNone InstantKind = iota
	KindDate
	KindTime
	// KindBoth is used by Now, which answers with both values.
	KindBoth
)

// Instant carries a Date, a Time, or both, as tagged by Kind. Requests
// set exactly one of them; Now answers with both.
type Instant struct {
	Kind InstantKind `cramberry:"1"`
	Date DateValue   `cramberry:"2"`
	Time TimeValue   `cramberry:"3"`
}

// DateInstant wraps d in an Instant.
func DateInstant(d Date) Instant {
	return Instant{Kind: KindDate, Date: DateToValue(d)}
}

// TimeInstant wraps t in an Instant.
func TimeInstant(t Time) Instant {
	return Instant{Kind: KindTime, Time: TimeToValue(t)}
}

// BothInstant wraps a Date and a Time of the same moment.
func BothInstant(d Date, t Time) Instant {
	return Instant{Kind: KindBoth, Date: DateToValue(d), Time: TimeToValue(t)}
}

// IsDate returns true if only the Date is set.
func (i Instant) IsDate() bool { return i.Kind == KindDate }

// IsTime returns true if only the Time is set.
func (i Instant) IsTime() bool { return i.Kind == KindTime }

// HasDate returns true if the Date is set, alone or with the Time.
func (i Instant) HasDate() bool { return i.Kind == KindDate || i.Kind == KindBoth }

// HasTime returns true if the Time is set, alone or with the Date.
func (i Instant) HasTime() bool { return i.Kind == KindTime || i.Kind == KindBoth }
