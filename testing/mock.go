// Package calendartest provides test utilities for code built on
// calendar.Calculator: a configurable mock, a test harness, and a
// compliance suite for calculator backends.
package calendartest

import (
	"context"
	"sync/atomic"

	"github.com/blockberries/calendar"
	"github.com/blockberries/calendar/types"
)

// Compile-time check that MockCalculator satisfies the interfaces.
var _ calendar.Connection = (*MockCalculator)(nil)

// MockCalculator is a configurable mock calculator. All methods are
// configurable via function fields. Unconfigured methods echo their
// subject back or return zero values.
type MockCalculator struct {
	NowFn     func(context.Context, types.NowRequest) (types.Instant, error)
	AddFn     func(context.Context, types.AddRequest) (types.Instant, error)
	DiffFn    func(context.Context, types.DiffRequest) (types.DiffResult, error)
	ZeroSetFn func(context.Context, types.ZeroSetRequest) (types.Instant, error)
	FormatFn  func(context.Context, types.FormatRequest) (types.FormatResult, error)
	ConvertFn func(context.Context, types.ConvertRequest) (types.Duration, error)
	SeriesFn  func(context.Context, types.SeriesRequest) (<-chan types.Instant, error)

	// Call counters (atomic for concurrent access).
	NowCalls     atomic.Int64
	AddCalls     atomic.Int64
	DiffCalls    atomic.Int64
	ZeroSetCalls atomic.Int64
	FormatCalls  atomic.Int64
	ConvertCalls atomic.Int64
	SeriesCalls  atomic.Int64
}

func (m *MockCalculator) Now(ctx context.Context, req types.NowRequest) (types.Instant, error) {
	m.NowCalls.Add(1)
	if m.NowFn != nil {
		return m.NowFn(ctx, req)
	}
	return types.BothInstant(types.DateFromStamp(0, req.UTC), types.Unix(0)), nil
}

func (m *MockCalculator) Add(ctx context.Context, req types.AddRequest) (types.Instant, error) {
	m.AddCalls.Add(1)
	if m.AddFn != nil {
		return m.AddFn(ctx, req)
	}
	return req.Subject, nil
}

func (m *MockCalculator) Diff(ctx context.Context, req types.DiffRequest) (types.DiffResult, error) {
	m.DiffCalls.Add(1)
	if m.DiffFn != nil {
		return m.DiffFn(ctx, req)
	}
	return types.DiffResult{Period: req.Period}, nil
}

func (m *MockCalculator) ZeroSet(ctx context.Context, req types.ZeroSetRequest) (types.Instant, error) {
	m.ZeroSetCalls.Add(1)
	if m.ZeroSetFn != nil {
		return m.ZeroSetFn(ctx, req)
	}
	return req.Subject, nil
}

func (m *MockCalculator) Format(ctx context.Context, req types.FormatRequest) (types.FormatResult, error) {
	m.FormatCalls.Add(1)
	if m.FormatFn != nil {
		return m.FormatFn(ctx, req)
	}
	return types.FormatResult{}, nil
}

func (m *MockCalculator) Convert(ctx context.Context, req types.ConvertRequest) (types.Duration, error) {
	m.ConvertCalls.Add(1)
	if m.ConvertFn != nil {
		return m.ConvertFn(ctx, req)
	}
	return req.Duration, nil
}

func (m *MockCalculator) Series(ctx context.Context, req types.SeriesRequest) (<-chan types.Instant, error) {
	m.SeriesCalls.Add(1)
	if m.SeriesFn != nil {
		return m.SeriesFn(ctx, req)
	}
	ch := make(chan types.Instant)
	close(ch)
	return ch, nil
}

func (m *MockCalculator) Close() error { return nil }
