// Package server provides the reference Calculator: it validates
// requests, converts wire structs to calendar values, and delegates all
// arithmetic to package types.
package server

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/blockberries/calendar"
	"github.com/blockberries/calendar/clock"
	"github.com/blockberries/calendar/types"
)

// Compile-time interface checks.
var (
	_ calendar.Calculator = (*Server)(nil)
	_ calendar.Streamer   = (*Server)(nil)
)

// Server is the in-memory Calculator. It holds no state besides its
// clock and is safe for concurrent use.
type Server struct {
	clock   clock.Clock
	logger  zerolog.Logger
	pattern string
	utc     bool
}

// Option configures a Server.
type Option func(*Server)

// WithDefaultPattern sets the pattern Format uses when a request has
// none. An empty pattern keeps types.DefaultPattern.
func WithDefaultPattern(pattern string) Option {
	return func(s *Server) {
		if pattern != "" {
			s.pattern = pattern
		}
	}
}

// WithUTC makes Now tag its Date UTC even when the request does not ask.
func WithUTC(utc bool) Option {
	return func(s *Server) { s.utc = utc }
}

// New creates a Server reading "now" from c. A nil c means the host
// clock.
func New(c clock.Clock, opts ...Option) *Server {
	if c == nil {
		c = clock.System{}
	}
	s := &Server{
		clock:   c,
		logger:  log.With().Str("component", "calculator").Logger(),
		pattern: types.DefaultPattern,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clock returns the clock the server reads "now" from.
func (s *Server) Clock() clock.Clock {
	return s.clock
}

// Now returns the current instant. The Date is tagged UTC when the
// request asks or the server was built WithUTC.
func (s *Server) Now(_ context.Context, req types.NowRequest) (types.Instant, error) {
	utc := req.UTC || s.utc
	t := types.TimeFromGo(s.clock.Now())
	d := types.DateFromStamp(t.Stamp(), utc)
	s.logger.Debug().Str("op", "Now").Bool("utc", utc).Int64("stamp", t.Stamp()).Send()
	return types.BothInstant(d, t), nil
}

// Add moves the subject by req.Delta.
func (s *Server) Add(_ context.Context, req types.AddRequest) (types.Instant, error) {
	if err := s.checkSubject("Add", req.Subject); err != nil {
		return types.Instant{}, err
	}
	if err := s.checkPeriod("Add", req.Delta.Period); err != nil {
		return types.Instant{}, err
	}
	s.logger.Debug().Str("op", "Add").Stringer("delta", req.Delta).Send()
	return shift(req.Subject, req.Delta.Value, req.Delta.Period), nil
}

// Diff returns subject minus other in units of req.Period.
func (s *Server) Diff(_ context.Context, req types.DiffRequest) (types.DiffResult, error) {
	if err := s.checkSubject("Diff", req.Subject); err != nil {
		return types.DiffResult{}, err
	}
	if err := s.checkSubject("Diff", req.Other); err != nil {
		return types.DiffResult{}, err
	}
	if req.Subject.IsDate() != req.Other.IsDate() {
		return types.DiffResult{}, s.reject("Diff", "subject and other must both be dates or both be times")
	}
	if err := s.checkPeriod("Diff", req.Period); err != nil {
		return types.DiffResult{}, err
	}

	var v int64
	if req.Subject.IsDate() {
		v = req.Subject.Date.ToDate().Diff(req.Other.Date.ToDate(), req.Period)
	} else {
		v = req.Subject.Time.ToTime().Diff(req.Other.Time.ToTime(), req.Period)
	}
	s.logger.Debug().Str("op", "Diff").Stringer("period", req.Period).Int64("value", v).Send()
	return types.DiffResult{Value: v, Period: req.Period}, nil
}

// ZeroSet truncates the subject to the start of req.Period.
func (s *Server) ZeroSet(_ context.Context, req types.ZeroSetRequest) (types.Instant, error) {
	if err := s.checkSubject("ZeroSet", req.Subject); err != nil {
		return types.Instant{}, err
	}
	if err := s.checkPeriod("ZeroSet", req.Period); err != nil {
		return types.Instant{}, err
	}
	s.logger.Debug().Str("op", "ZeroSet").Stringer("period", req.Period).Send()

	if req.Subject.IsDate() {
		d := req.Subject.Date.ToDate()
		return types.DateInstant(*d.ZeroSet(req.Period)), nil
	}
	t := req.Subject.Time.ToTime()
	return types.TimeInstant(*t.ZeroSet(req.Period)), nil
}

// Format renders the subject. An empty pattern means the server's
// default pattern.
func (s *Server) Format(_ context.Context, req types.FormatRequest) (types.FormatResult, error) {
	if err := s.checkSubject("Format", req.Subject); err != nil {
		return types.FormatResult{}, err
	}
	pattern := req.Pattern
	if pattern == "" {
		pattern = s.pattern
	}

	var text string
	if req.Subject.IsDate() {
		text = req.Subject.Date.ToDate().Format(pattern)
	} else {
		text = req.Subject.Time.ToTime().Format(pattern)
	}
	if text == "" {
		s.logger.Debug().Str("op", "Format").Str("pattern", pattern).Msg("pattern could not be rendered")
		return types.FormatResult{}, nil
	}
	return types.FormatResult{Text: text, OK: true}, nil
}

// Convert re-expresses req.Duration in req.Period.
func (s *Server) Convert(_ context.Context, req types.ConvertRequest) (types.Duration, error) {
	if err := s.checkPeriod("Convert", req.Duration.Period); err != nil {
		return types.Duration{}, err
	}
	if err := s.checkPeriod("Convert", req.Period); err != nil {
		return types.Duration{}, err
	}
	d := req.Duration
	d.As(req.Period)
	s.logger.Debug().Str("op", "Convert").Stringer("from", req.Duration).Stringer("to", d).Send()
	return d, nil
}

// Series streams req.Count instants starting at req.Start, each one
// computed as Start + k*Step.
func (s *Server) Series(ctx context.Context, req types.SeriesRequest) (<-chan types.Instant, error) {
	if err := s.checkSubject("Series", req.Start); err != nil {
		return nil, err
	}
	if err := s.checkPeriod("Series", req.Step.Period); err != nil {
		return nil, err
	}
	if req.Count == 0 || req.Count > types.MaxSeriesCount {
		return nil, s.reject("Series", fmt.Sprintf("count %d out of range [1,%d]", req.Count, types.MaxSeriesCount))
	}
	s.logger.Debug().Str("op", "Series").Stringer("step", req.Step).Uint32("count", req.Count).Send()

	ch := make(chan types.Instant)
	go func() {
		defer close(ch)
		for k := int64(0); k < int64(req.Count); k++ {
			next := shift(req.Start, req.Step.Value*k, req.Step.Period)
			select {
			case ch <- next:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Close is a no-op for the server.
func (s *Server) Close() error { return nil }

func shift(subject types.Instant, value int64, period types.Period) types.Instant {
	if subject.IsDate() {
		d := subject.Date.ToDate()
		return types.DateInstant(*d.Add(value, period))
	}
	t := subject.Time.ToTime()
	return types.TimeInstant(*t.Add(value, period))
}

func (s *Server) checkSubject(op string, subject types.Instant) error {
	if !subject.IsDate() && !subject.IsTime() {
		return s.reject(op, "exactly one of date or time must be set")
	}
	return nil
}

func (s *Server) checkPeriod(op string, p types.Period) error {
	if !p.Valid() {
		return s.reject(op, fmt.Sprintf("undefined period %s", p))
	}
	return nil
}

func (s *Server) reject(op, reason string) error {
	err := calendar.NewRequestError(op, reason)
	s.logger.Warn().Err(err).Str("op", op).Msg("request rejected")
	return err
}
