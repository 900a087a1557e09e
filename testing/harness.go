package calendartest

import (
	"context"
	"testing"

	"github.com/blockberries/calendar"
	"github.com/blockberries/calendar/types"
)

// Harness wraps a Calculator with helpers that fail the test on any
// error, so calendar properties can be written as plain assertions.
type Harness struct {
	t    *testing.T
	calc calendar.Calculator
}

// NewHarness creates a test harness around calc.
func NewHarness(t *testing.T, calc calendar.Calculator) *Harness {
	t.Helper()
	return &Harness{t: t, calc: calc}
}

// Calculator returns the wrapped calculator for direct access.
func (h *Harness) Calculator() calendar.Calculator {
	return h.calc
}

// Now returns the current instant.
func (h *Harness) Now(utc bool) types.Instant {
	h.t.Helper()
	inst, err := h.calc.Now(context.Background(), types.NowRequest{UTC: utc})
	if err != nil {
		h.t.Fatalf("Now failed: %v", err)
	}
	return inst
}

// Add moves subject by value units of period.
func (h *Harness) Add(subject types.Instant, value int64, period types.Period) types.Instant {
	h.t.Helper()
	inst, err := h.calc.Add(context.Background(), types.AddRequest{
		Subject: subject,
		Delta:   types.NewDuration(value, period),
	})
	if err != nil {
		h.t.Fatalf("Add(%d %s) failed: %v", value, period, err)
	}
	return inst
}

// Diff returns subject minus other in units of period.
func (h *Harness) Diff(subject, other types.Instant, period types.Period) int64 {
	h.t.Helper()
	res, err := h.calc.Diff(context.Background(), types.DiffRequest{
		Subject: subject,
		Other:   other,
		Period:  period,
	})
	if err != nil {
		h.t.Fatalf("Diff(%s) failed: %v", period, err)
	}
	return res.Value
}

// ZeroSet truncates subject to the start of period.
func (h *Harness) ZeroSet(subject types.Instant, period types.Period) types.Instant {
	h.t.Helper()
	inst, err := h.calc.ZeroSet(context.Background(), types.ZeroSetRequest{
		Subject: subject,
		Period:  period,
	})
	if err != nil {
		h.t.Fatalf("ZeroSet(%s) failed: %v", period, err)
	}
	return inst
}

// Format renders subject with pattern.
func (h *Harness) Format(subject types.Instant, pattern string) (string, bool) {
	h.t.Helper()
	res, err := h.calc.Format(context.Background(), types.FormatRequest{
		Subject: subject,
		Pattern: pattern,
	})
	if err != nil {
		h.t.Fatalf("Format(%q) failed: %v", pattern, err)
	}
	return res.Text, res.OK
}

// Convert re-expresses value units of from in units of to.
func (h *Harness) Convert(value int64, from, to types.Period) types.Duration {
	h.t.Helper()
	d, err := h.calc.Convert(context.Background(), types.ConvertRequest{
		Duration: types.NewDuration(value, from),
		Period:   to,
	})
	if err != nil {
		h.t.Fatalf("Convert(%d %s to %s) failed: %v", value, from, to, err)
	}
	return d
}

// Series collects count instants from start stepped by step. The
// calculator must also implement calendar.Streamer.
func (h *Harness) Series(start types.Instant, step types.Duration, count uint32) []types.Instant {
	h.t.Helper()
	s, ok := h.calc.(calendar.Streamer)
	if !ok {
		h.t.Fatalf("%T does not implement calendar.Streamer", h.calc)
	}
	ch, err := s.Series(context.Background(), types.SeriesRequest{
		Start: start,
		Step:  step,
		Count: count,
	})
	if err != nil {
		h.t.Fatalf("Series failed: %v", err)
	}
	var out []types.Instant
	for inst := range ch {
		out = append(out, inst)
	}
	return out
}

// MustReject asserts that err is a RequestError.
func (h *Harness) MustReject(err error) {
	h.t.Helper()
	if _, ok := calendar.IsRequest(err); !ok {
		h.t.Fatalf("expected RequestError, got %v", err)
	}
}

// --- Helper Factories ---

// Date returns a local date Instant.
func Date(year, month, day, hour, minute, second int) types.Instant {
	return types.Instant{Kind: types.KindDate, Date: types.DateValue{
		Year:   int32(year),
		Month:  int32(month),
		Day:    int32(day),
		Hour:   int32(hour),
		Minute: int32(minute),
		Second: int32(second),
	}}
}

// UTCDate returns a UTC date Instant.
func UTCDate(year, month, day, hour, minute, second int) types.Instant {
	inst := Date(year, month, day, hour, minute, second)
	inst.Date.UTC = true
	return inst
}

// Time returns a Time Instant.
func Time(seconds int64, micros int32) types.Instant {
	return types.Instant{Kind: types.KindTime, Time: types.TimeValue{Seconds: seconds, Micros: micros}}
}
