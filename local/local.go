// Package local provides an in-process calendar connection.
//
// For callers compiled into the same binary as the calculator, this
// adapter exposes the server through calendar.Connection with no
// serialization overhead.
package local

import (
	"context"

	"github.com/blockberries/calendar"
	"github.com/blockberries/calendar/clock"
	"github.com/blockberries/calendar/server"
	"github.com/blockberries/calendar/types"
)

// Compile-time interface check.
var _ calendar.Connection = (*Connection)(nil)

// Connection wraps a server.Server.
type Connection struct {
	srv *server.Server
}

// NewConnection creates an in-process connection to a calculator that
// reads "now" from c.
func NewConnection(c clock.Clock, opts ...server.Option) *Connection {
	return &Connection{srv: server.New(c, opts...)}
}

func (c *Connection) Now(ctx context.Context, req types.NowRequest) (types.Instant, error) {
	return c.srv.Now(ctx, req)
}

func (c *Connection) Add(ctx context.Context, req types.AddRequest) (types.Instant, error) {
	return c.srv.Add(ctx, req)
}

func (c *Connection) Diff(ctx context.Context, req types.DiffRequest) (types.DiffResult, error) {
	return c.srv.Diff(ctx, req)
}

func (c *Connection) ZeroSet(ctx context.Context, req types.ZeroSetRequest) (types.Instant, error) {
	return c.srv.ZeroSet(ctx, req)
}

func (c *Connection) Format(ctx context.Context, req types.FormatRequest) (types.FormatResult, error) {
	return c.srv.Format(ctx, req)
}

func (c *Connection) Convert(ctx context.Context, req types.ConvertRequest) (types.Duration, error) {
	return c.srv.Convert(ctx, req)
}

func (c *Connection) Series(ctx context.Context, req types.SeriesRequest) (<-chan types.Instant, error) {
	return c.srv.Series(ctx, req)
}

func (c *Connection) Close() error { return nil }

// Server returns the underlying server for advanced use cases.
func (c *Connection) Server() *server.Server {
	return c.srv
}
