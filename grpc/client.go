package calendargrpc

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/calendar"
	"github.com/blockberries/calendar/types"
)

// Compile-time interface check.
var _ calendar.Connection = (*Client)(nil)

// Client implements calendar.Connection for a remote calculator over
// gRPC using cramberry serialization.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote calculator.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("calendar client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// fromStatus turns an InvalidArgument status back into a RequestError.
func fromStatus(method string, err error) error {
	if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
		return calendar.NewRequestError(method, st.Message())
	}
	return err
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any) error {
	if err := c.cc.Invoke(ctx, fullMethod(method), req, resp); err != nil {
		return fromStatus(method, err)
	}
	return nil
}

func (c *Client) Now(ctx context.Context, req types.NowRequest) (types.Instant, error) {
	resp := new(types.Instant)
	if err := c.invoke(ctx, "Now", &req, resp); err != nil {
		return types.Instant{}, err
	}
	return *resp, nil
}

func (c *Client) Add(ctx context.Context, req types.AddRequest) (types.Instant, error) {
	resp := new(types.Instant)
	if err := c.invoke(ctx, "Add", &req, resp); err != nil {
		return types.Instant{}, err
	}
	return *resp, nil
}

func (c *Client) Diff(ctx context.Context, req types.DiffRequest) (types.DiffResult, error) {
	resp := new(types.DiffResult)
	if err := c.invoke(ctx, "Diff", &req, resp); err != nil {
		return types.DiffResult{}, err
	}
	return *resp, nil
}

func (c *Client) ZeroSet(ctx context.Context, req types.ZeroSetRequest) (types.Instant, error) {
	resp := new(types.Instant)
	if err := c.invoke(ctx, "ZeroSet", &req, resp); err != nil {
		return types.Instant{}, err
	}
	return *resp, nil
}

func (c *Client) Format(ctx context.Context, req types.FormatRequest) (types.FormatResult, error) {
	resp := new(types.FormatResult)
	if err := c.invoke(ctx, "Format", &req, resp); err != nil {
		return types.FormatResult{}, err
	}
	return *resp, nil
}

func (c *Client) Convert(ctx context.Context, req types.ConvertRequest) (types.Duration, error) {
	resp := new(types.Duration)
	if err := c.invoke(ctx, "Convert", &req, resp); err != nil {
		return types.Duration{}, err
	}
	return *resp, nil
}

// Series opens the server stream and relays instants on the returned
// channel. The first message is read before returning so that a
// rejected request surfaces as an error rather than an empty channel.
func (c *Client) Series(ctx context.Context, req types.SeriesRequest) (<-chan types.Instant, error) {
	stream, err := c.cc.NewStream(ctx, &grpc.StreamDesc{
		StreamName:    "Series",
		ServerStreams: true,
	}, fullMethod("Series"))
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(&req); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}

	first := new(types.Instant)
	if err := stream.RecvMsg(first); err != nil {
		return nil, fromStatus("Series", err)
	}

	ch := make(chan types.Instant)
	go func() {
		defer close(ch)
		next := first
		for {
			select {
			case ch <- *next:
			case <-ctx.Done():
				return
			}
			next = new(types.Instant)
			if err := stream.RecvMsg(next); err != nil {
				if !errors.Is(err, io.EOF) {
					log.Debug().Err(err).Str("component", "grpc-client").Msg("series stream ended")
				}
				return
			}
		}
	}()
	return ch, nil
}
