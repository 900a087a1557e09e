package types

import (
	"fmt"
	"strings"
)

// Period is the unit of a Duration. Periods are ordered by increasing
// magnitude, so MicroSecond < MilliSecond < ... < Year.
type Period uint8

const (
	MicroSecond Period = iota + 1
	MilliSecond
	Second
	Minute
	Hour
	Day
	Week
	// Month is converted to and from Week at a fixed 1:4 ratio.
	Month
	Year
)

var periodNames = [...]string{
	MicroSecond: "MicroSecond",
	MilliSecond: "MilliSecond",
	Second:      "Second",
	Minute:      "Minute",
	Hour:        "Hour",
	Day:         "Day",
	Week:        "Week",
	Month:       "Month",
	Year:        "Year",
}

// ratios[p] is the number of p units in the next coarser period.
var ratios = [...]int64{
	MicroSecond: 1000,
	MilliSecond: 1000,
	Second:      60,
	Minute:      60,
	Hour:        24,
	Day:         7,
	Week:        4,
	Month:       12,
}

// Valid returns true if p is one of the defined periods.
func (p Period) Valid() bool {
	return p >= MicroSecond && p <= Year
}

func (p Period) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Period(%d)", uint8(p))
	}
	return periodNames[p]
}

// ParsePeriod parses a period name case-insensitively. Plural forms
// ("hours") and the short forms us, ms, s, m, h, d, w, mo, y are accepted.
func ParsePeriod(s string) (Period, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "us", "µs":
		return MicroSecond, nil
	case "ms":
		return MilliSecond, nil
	case "s":
		return Second, nil
	case "m":
		return Minute, nil
	case "h":
		return Hour, nil
	case "d":
		return Day, nil
	case "w":
		return Week, nil
	case "mo":
		return Month, nil
	case "y":
		return Year, nil
	}
	name = strings.TrimSuffix(name, "s")
	for p := MicroSecond; p <= Year; p++ {
		if strings.ToLower(periodNames[p]) == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown period %q", s)
}

// Duration is an integer amount tagged with its unit. The amount may be
// negative. Conversions between units use fixed ratios and are lossy when
// moving to a coarser unit.
type Duration struct {
	Value  int64  `cramberry:"1"`
	Period Period `cramberry:"2"`
}

// NewDuration returns a Duration of value units of period.
func NewDuration(value int64, period Period) Duration {
	return Duration{Value: value, Period: period}
}

// Set replaces both the amount and the unit.
func (d *Duration) Set(value int64, period Period) *Duration {
	d.Value = value
	d.Period = period
	return d
}

// SetValue replaces the amount, keeping the unit.
func (d *Duration) SetValue(value int64) *Duration {
	d.Value = value
	return d
}

// SetPeriod replaces the unit without converting the amount.
func (d *Duration) SetPeriod(period Period) *Duration {
	d.Period = period
	return d
}

// Rase converts d to the next coarser unit, truncating the amount.
// It is a no-op at Year.
func (d *Duration) Rase() *Duration {
	if d.Period >= MicroSecond && d.Period < Year {
		d.Value /= ratios[d.Period]
		d.Period++
	}
	return d
}

// Down converts d to the next finer unit. It is a no-op at MicroSecond.
func (d *Duration) Down() *Duration {
	if d.Period > MicroSecond && d.Period <= Year {
		d.Period--
		d.Value *= ratios[d.Period]
	}
	return d
}

// As converts d to period one hop at a time, so rounding errors of the
// intermediate hops compound.
func (d *Duration) As(period Period) *Duration {
	if !d.Period.Valid() || !period.Valid() {
		return d
	}
	for d.Period < period {
		d.Rase()
	}
	for d.Period > period {
		d.Down()
	}
	return d
}

// ValueAs returns the amount of d expressed in period. d is not modified.
func (d Duration) ValueAs(period Period) int64 {
	return d.As(period).Value
}

// Add returns d plus other, with other converted to the unit of d.
func (d Duration) Add(other Duration) Duration {
	return Duration{Value: d.Value + other.ValueAs(d.Period), Period: d.Period}
}

// Sub returns d minus other, with other converted to the unit of d.
func (d Duration) Sub(other Duration) Duration {
	return Duration{Value: d.Value - other.ValueAs(d.Period), Period: d.Period}
}

// AddValue returns d with value added to its amount.
func (d Duration) AddValue(value int64) Duration {
	return Duration{Value: d.Value + value, Period: d.Period}
}

// SubValue returns d with value subtracted from its amount.
func (d Duration) SubValue(value int64) Duration {
	return Duration{Value: d.Value - value, Period: d.Period}
}

// Neg returns d with the sign of its amount flipped.
func (d Duration) Neg() Duration {
	return Duration{Value: -d.Value, Period: d.Period}
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than,
// equal to, or longer than other. Both sides are lowered to the finer of
// the two units before comparing, so Week and Month compare through the
// 1:4 approximation.
func (d Duration) Compare(other Duration) int {
	a, b := d.Value, other.Value
	switch {
	case d.Period > other.Period:
		a = d.ValueAs(other.Period)
	case d.Period < other.Period:
		b = other.ValueAs(d.Period)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and other have the same magnitude.
func (d Duration) Equal(other Duration) bool { return d.Compare(other) == 0 }

// Less reports whether d is shorter than other.
func (d Duration) Less(other Duration) bool { return d.Compare(other) < 0 }

// Greater reports whether d is longer than other.
func (d Duration) Greater(other Duration) bool { return d.Compare(other) > 0 }

func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.Value, d.Period)
}
