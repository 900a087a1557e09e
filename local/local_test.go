package local

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/blockberries/calendar"
	"github.com/blockberries/calendar/clock"
	calendartest "github.com/blockberries/calendar/testing"
	"github.com/blockberries/calendar/types"
)

func TestMain(m *testing.M) {
	time.Local = time.FixedZone("CST", 8*3600)
	os.Exit(m.Run())
}

func TestLocalConnection_FullCycle(t *testing.T) {
	conn := NewConnection(clock.NewFixed(time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)))
	defer conn.Close()
	ctx := context.Background()

	now, err := conn.Now(ctx, types.NowRequest{})
	if err != nil {
		t.Fatalf("now failed: %v", err)
	}

	// Default format of the date.
	fr, err := conn.Format(ctx, types.FormatRequest{Subject: types.Instant{Kind: types.KindDate, Date: now.Date}})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if fr.Text != "2000-01-01 00:00:00" {
		t.Errorf("expected 2000-01-01 00:00:00, got %q", fr.Text)
	}

	// One hour later through the Time side.
	later, err := conn.Add(ctx, types.AddRequest{
		Subject: types.Instant{Kind: types.KindTime, Time: now.Time},
		Delta:   types.NewDuration(1, types.Hour),
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	fr, err = conn.Format(ctx, types.FormatRequest{Subject: later})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if fr.Text != "2000-01-01 01:00:00" {
		t.Errorf("expected 2000-01-01 01:00:00, got %q", fr.Text)
	}

	diff, err := conn.Diff(ctx, types.DiffRequest{
		Subject: later,
		Other:   types.Instant{Kind: types.KindTime, Time: now.Time},
		Period:  types.Minute,
	})
	if err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if diff.Value != 60 {
		t.Errorf("expected 60 minutes, got %d", diff.Value)
	}

	ch, err := conn.Series(ctx, types.SeriesRequest{
		Start: types.Instant{Kind: types.KindTime, Time: now.Time},
		Step:  types.NewDuration(1, types.Day),
		Count: 3,
	})
	if err != nil {
		t.Fatalf("series failed: %v", err)
	}
	n := 0
	for range ch {
		n++
	}
	if n != 3 {
		t.Errorf("expected 3 instants, got %d", n)
	}
}

func TestLocalConnection_Concurrent(t *testing.T) {
	conn := NewConnection(clock.System{})

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, err := conn.Convert(context.Background(), types.ConvertRequest{
				Duration: types.NewDuration(1, types.Week),
				Period:   types.Hour,
			})
			if err != nil {
				t.Errorf("Convert error: %v", err)
			}
		}()
	}
	for i := 0; i < 20; i++ {
		<-done
	}
}

func TestLocalConnection_Compliance(t *testing.T) {
	calendartest.RunComplianceSuite(t, func() calendar.Connection {
		return NewConnection(clock.System{})
	})
}
