package calendargrpc

import (
	"context"
	"net"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/blockberries/calendar"
	"github.com/blockberries/calendar/types"
)

// Compile-time interface check.
var _ CalculatorServiceServer = (*GRPCServer)(nil)

// GRPCServer exposes a calculator over gRPC. Request and result
// structs travel as-is through the cramberry codec.
type GRPCServer struct {
	srv    calendar.Connection
	logger zerolog.Logger
}

// NewGRPCServer creates a gRPC server around calc, usually a
// *server.Server.
func NewGRPCServer(calc calendar.Connection) *GRPCServer {
	return &GRPCServer{
		srv:    calc,
		logger: log.With().Str("component", "grpc").Logger(),
	}
}

// Register adds the calculator service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterCalculatorServiceServer(gs, s)
}

// Serve starts a gRPC server on the given listener. It blocks until the
// server stops.
func (s *GRPCServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("serving")
	return gs.Serve(lis)
}

// Stop gracefully stops the gRPC server.
func (s *GRPCServer) Stop(gs *grpc.Server) {
	gs.GracefulStop()
}

// Calculator returns the served calculator.
func (s *GRPCServer) Calculator() calendar.Connection {
	return s.srv
}

// toStatus maps a RequestError to InvalidArgument carrying its reason.
// The client rebuilds the RequestError from the method name.
func toStatus(err error) error {
	if re, ok := calendar.IsRequest(err); ok {
		return status.Error(codes.InvalidArgument, re.Reason)
	}
	return err
}

func (s *GRPCServer) Now(ctx context.Context, req *types.NowRequest) (*types.Instant, error) {
	resp, err := s.srv.Now(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (s *GRPCServer) Add(ctx context.Context, req *types.AddRequest) (*types.Instant, error) {
	resp, err := s.srv.Add(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (s *GRPCServer) Diff(ctx context.Context, req *types.DiffRequest) (*types.DiffResult, error) {
	resp, err := s.srv.Diff(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (s *GRPCServer) ZeroSet(ctx context.Context, req *types.ZeroSetRequest) (*types.Instant, error) {
	resp, err := s.srv.ZeroSet(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (s *GRPCServer) Format(ctx context.Context, req *types.FormatRequest) (*types.FormatResult, error) {
	resp, err := s.srv.Format(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (s *GRPCServer) Convert(ctx context.Context, req *types.ConvertRequest) (*types.Duration, error) {
	resp, err := s.srv.Convert(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (s *GRPCServer) Series(req *types.SeriesRequest, stream grpc.ServerStream) error {
	ch, err := s.srv.Series(stream.Context(), *req)
	if err != nil {
		return toStatus(err)
	}
	n := 0
	for inst := range ch {
		if err := stream.SendMsg(&inst); err != nil {
			s.logger.Debug().Err(err).Int("sent", n).Msg("series stream aborted")
			return err
		}
		n++
	}
	return nil
}
