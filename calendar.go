// Package calendar defines the Calculator interface: calendar arithmetic
// over the Duration, Date and Time values of package types, exposed as
// request/response operations so it can be served in-process or over
// a transport.
//
// All arithmetic lives in package types. A Calculator only validates
// requests, picks the clock for Now, and converts between the wire
// structs and the values.
package calendar

import (
	"context"

	"github.com/blockberries/calendar/types"
)

// Calculator is the core interface every calendar backend implements.
//
// Every method MUST be safe for concurrent use. Malformed requests
// (no subject, mixed kinds, undefined periods) fail with a
// *RequestError; well-formed requests never fail on calendar grounds
// because out of range values are normalized.
type Calculator interface {
	// Now returns the current instant with both Date and Time set.
	Now(ctx context.Context, req types.NowRequest) (types.Instant, error)

	// Add moves the subject by a Duration. Periods up to Week are
	// exact; Month and Year are calendar moves that clamp the day.
	Add(ctx context.Context, req types.AddRequest) (types.Instant, error)

	// Diff returns subject minus other in the requested unit. Units up
	// to Week measure elapsed boundaries; Month and Year compare
	// calendar positions.
	Diff(ctx context.Context, req types.DiffRequest) (types.DiffResult, error)

	// ZeroSet truncates the subject to the start of a period.
	ZeroSet(ctx context.Context, req types.ZeroSetRequest) (types.Instant, error)

	// Format renders the subject with a strftime pattern. A pattern
	// that cannot be rendered is not an error: the result has OK false.
	Format(ctx context.Context, req types.FormatRequest) (types.FormatResult, error)

	// Convert re-expresses a Duration in another unit using the fixed
	// lossy ratio table.
	Convert(ctx context.Context, req types.ConvertRequest) (types.Duration, error)
}

// Streamer produces a sequence of instants.
//
// The returned channel yields instants in order and is closed after the
// last one or when ctx is done. The caller controls backpressure by the
// rate at which it reads from the channel.
type Streamer interface {
	Series(ctx context.Context, req types.SeriesRequest) (<-chan types.Instant, error)
}

// Connection represents a transport-agnostic connection to a
// Calculator. Both gRPC clients and in-process adapters implement this.
type Connection interface {
	Calculator
	Streamer

	// Close terminates the connection.
	Close() error
}
