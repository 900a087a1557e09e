package calendartest

import (
	"context"
	"sync"
	"testing"

	"github.com/blockberries/calendar"
	"github.com/blockberries/calendar/types"
)

// RunComplianceSuite runs the standard calendar properties against a
// calculator backend. Week boundaries follow the process local zone,
// which must be a whole number of hours away from UTC.
//
// The factory function should return a fresh connection for each test.
func RunComplianceSuite(t *testing.T, factory func() calendar.Connection) {
	t.Helper()

	run := func(name string, fn func(t *testing.T, h *Harness)) {
		t.Run(name, func(t *testing.T) {
			conn := factory()
			defer conn.Close()
			fn(t, NewHarness(t, conn))
		})
	}

	run("now_sets_both_kinds", func(t *testing.T, h *Harness) {
		inst := h.Now(true)
		if inst.Kind != types.KindBoth {
			t.Fatal("Now should set both Date and Time")
		}
		if !inst.Date.UTC {
			t.Error("Now(utc) should tag the date UTC")
		}
	})

	run("month_end_clamp", func(t *testing.T, h *Harness) {
		got := h.Add(UTCDate(2023, 1, 31, 0, 0, 0), 1, types.Month)
		if got.Date.Month != 2 || got.Date.Day != 28 {
			t.Errorf("2023-01-31 + 1 month: got %d-%d", got.Date.Month, got.Date.Day)
		}
		got = h.Add(UTCDate(2024, 1, 31, 0, 0, 0), 1, types.Month)
		if got.Date.Month != 2 || got.Date.Day != 29 {
			t.Errorf("2024-01-31 + 1 month: got %d-%d", got.Date.Month, got.Date.Day)
		}
	})

	run("leap_day_plus_year", func(t *testing.T, h *Harness) {
		got := h.Add(UTCDate(2024, 2, 29, 12, 0, 0), 1, types.Year)
		if got.Date.Year != 2025 || got.Date.Month != 2 || got.Date.Day != 28 {
			t.Errorf("2024-02-29 + 1 year: got %d-%d-%d", got.Date.Year, got.Date.Month, got.Date.Day)
		}
	})

	run("negative_month_borrows_year", func(t *testing.T, h *Harness) {
		got := h.Add(UTCDate(2024, 3, 31, 0, 0, 0), -13, types.Month)
		if got.Date.Year != 2023 || got.Date.Month != 2 || got.Date.Day != 28 {
			t.Errorf("2024-03-31 - 13 months: got %d-%d-%d", got.Date.Year, got.Date.Month, got.Date.Day)
		}
	})

	run("calendar_year_diff", func(t *testing.T, h *Harness) {
		a, b := UTCDate(2015, 1, 1, 0, 0, 0), UTCDate(2014, 12, 30, 0, 0, 0)
		if v := h.Diff(a, b, types.Year); v != 1 {
			t.Errorf("year diff: expected 1, got %d", v)
		}
		if v := h.Diff(a, b, types.Month); v != 1 {
			t.Errorf("month diff: expected 1, got %d", v)
		}
		if v := h.Diff(a, b, types.Day); v != 2 {
			t.Errorf("day diff: expected 2, got %d", v)
		}
		if v := h.Diff(b, a, types.Day); v != -2 {
			t.Errorf("reverse day diff: expected -2, got %d", v)
		}
	})

	run("epoch_week_boundaries", func(t *testing.T, h *Harness) {
		thu := Date(1970, 1, 1, 0, 0, 0)
		if v := h.Diff(thu, Date(1969, 12, 29, 0, 0, 0), types.Week); v != 0 {
			t.Errorf("1970-01-01 and 1969-12-29 share week 0, got diff %d", v)
		}
		if v := h.Diff(Date(1970, 1, 5, 0, 0, 0), Date(1970, 1, 4, 23, 59, 59), types.Week); v != 1 {
			t.Errorf("Monday 1970-01-05 starts week 1, got diff %d", v)
		}
	})

	run("zero_set_week_starts_monday", func(t *testing.T, h *Harness) {
		got := h.ZeroSet(Date(2024, 1, 3, 15, 4, 5), types.Week)
		want := types.DateValue{Year: 2024, Month: 1, Day: 1}
		if got.Date != want {
			t.Errorf("expected %+v, got %+v", want, got.Date)
		}
	})

	run("zero_set_month_and_year", func(t *testing.T, h *Harness) {
		got := h.ZeroSet(UTCDate(2024, 7, 19, 8, 30, 0), types.Month)
		if got.Date.Day != 1 || got.Date.Hour != 0 || got.Date.Minute != 0 {
			t.Errorf("month start: got %+v", got.Date)
		}
		got = h.ZeroSet(UTCDate(2024, 7, 19, 8, 30, 0), types.Year)
		if got.Date.Month != 1 || got.Date.Day != 1 {
			t.Errorf("year start: got %+v", got.Date)
		}
	})

	run("micro_carry", func(t *testing.T, h *Harness) {
		got := h.Add(Time(0, 999999), 1, types.MicroSecond)
		if got.Time.Seconds != 1 || got.Time.Micros != 0 {
			t.Errorf("carry: got %+v", got.Time)
		}
		got = h.Add(Time(0, 0), -1, types.MicroSecond)
		if got.Time.Seconds != -1 || got.Time.Micros != 999999 {
			t.Errorf("borrow: got %+v", got.Time)
		}
	})

	run("epoch_time", func(t *testing.T, h *Harness) {
		got := h.Add(Time(0, 0), 1, types.Second)
		if !got.IsTime() || got.Time.Seconds != 1 {
			t.Errorf("epoch + 1s: got %+v", got)
		}
		got = h.Add(Time(1, 0), -1, types.Second)
		if !got.IsTime() || got.Time != (types.TimeValue{}) {
			t.Errorf("1s - 1s: got %+v", got)
		}
		if v := h.Diff(Time(0, 0), Time(0, 0), types.Second); v != 0 {
			t.Errorf("epoch - epoch: got %d", v)
		}
	})

	run("default_format", func(t *testing.T, h *Harness) {
		text, ok := h.Format(Date(2000, 1, 1, 0, 0, 0), "")
		if !ok || text != "2000-01-01 00:00:00" {
			t.Errorf("expected 2000-01-01 00:00:00, got %q (ok=%v)", text, ok)
		}
		text, _ = h.Format(UTCDate(2024, 1, 1, 9, 5, 0), "%a %d %b %Y %I:%M %p")
		if text != "Mon 01 Jan 2024 09:05 AM" {
			t.Errorf("unexpected format result %q", text)
		}
	})

	run("unrenderable_format", func(t *testing.T, h *Harness) {
		if _, ok := h.Format(Date(2000, 1, 1, 0, 0, 0), "%Q"); ok {
			t.Error("unknown directive should not render")
		}
		if _, ok := h.Format(Date(2000, 1, 1, 0, 0, 0), "%Y%"); ok {
			t.Error("dangling percent should not render")
		}
	})

	run("lossy_conversion", func(t *testing.T, h *Harness) {
		cases := []struct {
			value    int64
			from, to types.Period
			want     int64
		}{
			{1, types.Day, types.Hour, 24},
			{1, types.Month, types.Week, 4},
			{1, types.Year, types.Day, 336},
			{90, types.Second, types.Minute, 1},
			{1, types.Week, types.Second, 604800},
		}
		for _, c := range cases {
			got := h.Convert(c.value, c.from, c.to)
			if got.Value != c.want || got.Period != c.to {
				t.Errorf("%d %s as %s: expected %d, got %s", c.value, c.from, c.to, c.want, got)
			}
		}
	})

	run("series_from_start", func(t *testing.T, h *Harness) {
		got := h.Series(UTCDate(2024, 1, 31, 0, 0, 0), types.NewDuration(1, types.Month), 4)
		want := []int32{31, 29, 31, 30}
		if len(got) != len(want) {
			t.Fatalf("expected %d instants, got %d", len(want), len(got))
		}
		for i, inst := range got {
			if inst.Date.Day != want[i] {
				t.Errorf("element %d: expected day %d, got %d", i, want[i], inst.Date.Day)
			}
		}
	})

	run("request_errors", func(t *testing.T, h *Harness) {
		ctx := context.Background()
		calc := h.Calculator()

		_, err := calc.Add(ctx, types.AddRequest{Delta: types.NewDuration(1, types.Day)})
		h.MustReject(err)

		_, err = calc.Diff(ctx, types.DiffRequest{
			Subject: Date(2000, 1, 1, 0, 0, 0),
			Other:   Time(0, 0),
			Period:  types.Second,
		})
		h.MustReject(err)

		_, err = calc.ZeroSet(ctx, types.ZeroSetRequest{Subject: Time(0, 0), Period: types.Period(0)})
		h.MustReject(err)

		_, err = calc.(calendar.Streamer).Series(ctx, types.SeriesRequest{
			Start: Time(0, 0),
			Step:  types.NewDuration(1, types.Day),
		})
		h.MustReject(err)
	})

	run("concurrent_add", func(t *testing.T, h *Harness) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := h.Calculator().Add(context.Background(), types.AddRequest{
					Subject: Time(int64(i), 0),
					Delta:   types.NewDuration(1, types.Hour),
				})
				if err != nil {
					t.Errorf("concurrent Add failed: %v", err)
				}
			}(i)
		}
		wg.Wait()
	})
}
