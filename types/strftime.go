package types

import (
	"strconv"
	"strings"
)

// DefaultPattern is the strftime pattern equivalent to Date.String.
const DefaultPattern = "%Y-%m-%d %H:%M:%S"

// MaxFormatLength is the longest result Format will produce: a 63 byte
// buffer less its terminating NUL. Longer results are reported as
// failures.
const MaxFormatLength = 62

var (
	shortDays   = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	longDays    = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	longMonths  = [...]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
)

func pad(b *strings.Builder, v, width int, fill byte) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b.WriteByte(fill)
	}
	b.WriteString(s)
}

// strftime renders d in the C locale. It returns "" on an unknown
// directive, a dangling '%', an empty result or an oversized result.
func strftime(d Date, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(pattern) {
			return ""
		}
		if !directive(&b, d, pattern[i]) {
			return ""
		}
		if b.Len() > MaxFormatLength {
			return ""
		}
	}
	if b.Len() == 0 || b.Len() > MaxFormatLength {
		return ""
	}
	return b.String()
}

func directive(b *strings.Builder, d Date, verb byte) bool {
	switch verb {
	case 'Y':
		b.WriteString(strconv.Itoa(d.Year()))
	case 'y':
		pad(b, (d.Year()%100+100)%100, 2, '0')
	case 'C':
		pad(b, d.Year()/100, 2, '0')
	case 'm':
		pad(b, d.Month(), 2, '0')
	case 'd':
		pad(b, d.Day(), 2, '0')
	case 'e':
		pad(b, d.Day(), 2, ' ')
	case 'H':
		pad(b, d.Hour(), 2, '0')
	case 'I':
		h := d.Hour() % 12
		if h == 0 {
			h = 12
		}
		pad(b, h, 2, '0')
	case 'M':
		pad(b, d.Minute(), 2, '0')
	case 'S':
		pad(b, d.Second(), 2, '0')
	case 'p':
		if d.Hour() < 12 {
			b.WriteString("AM")
		} else {
			b.WriteString("PM")
		}
	case 'j':
		pad(b, d.YearDay(), 3, '0')
	case 'a':
		b.WriteString(shortDays[d.Week()%7])
	case 'A':
		b.WriteString(longDays[d.Week()%7])
	case 'b', 'h':
		b.WriteString(shortMonths[d.Month()-1])
	case 'B':
		b.WriteString(longMonths[d.Month()-1])
	case 'w':
		pad(b, d.Week()%7, 1, '0')
	case 'u':
		pad(b, d.Week(), 1, '0')
	case 'F':
		return expand(b, d, "%Y-%m-%d")
	case 'T', 'X':
		return expand(b, d, "%H:%M:%S")
	case 'D', 'x':
		return expand(b, d, "%m/%d/%y")
	case 'R':
		return expand(b, d, "%H:%M")
	case 's':
		b.WriteString(strconv.FormatInt(d.Stamp(), 10))
	case 'z':
		_, offset := d.t.Zone()
		sign := byte('+')
		if offset < 0 {
			sign = '-'
			offset = -offset
		}
		b.WriteByte(sign)
		pad(b, offset/3600, 2, '0')
		pad(b, offset%3600/60, 2, '0')
	case 'Z':
		name, _ := d.t.Zone()
		b.WriteString(name)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case '%':
		b.WriteByte('%')
	default:
		return false
	}
	return true
}

func expand(b *strings.Builder, d Date, pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			b.WriteByte(pattern[i])
			continue
		}
		i++
		directive(b, d, pattern[i])
	}
	return true
}
