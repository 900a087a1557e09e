package calendargrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/blockberries/calendar/types"
)

const serviceName = "blockberries.calendar.v1.CalculatorService"

// CalculatorServiceServer is the server-side interface for the
// calculator gRPC service.
type CalculatorServiceServer interface {
	Now(context.Context, *types.NowRequest) (*types.Instant, error)
	Add(context.Context, *types.AddRequest) (*types.Instant, error)
	Diff(context.Context, *types.DiffRequest) (*types.DiffResult, error)
	ZeroSet(context.Context, *types.ZeroSetRequest) (*types.Instant, error)
	Format(context.Context, *types.FormatRequest) (*types.FormatResult, error)
	Convert(context.Context, *types.ConvertRequest) (*types.Duration, error)
	Series(*types.SeriesRequest, grpc.ServerStream) error
}

// RegisterCalculatorServiceServer registers srv on a gRPC server.
func RegisterCalculatorServiceServer(s *grpc.Server, srv CalculatorServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerNow(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.NowRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalculatorServiceServer).Now(ctx, req)
}

func handlerAdd(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.AddRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalculatorServiceServer).Add(ctx, req)
}

func handlerDiff(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.DiffRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalculatorServiceServer).Diff(ctx, req)
}

func handlerZeroSet(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.ZeroSetRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalculatorServiceServer).ZeroSet(ctx, req)
}

func handlerFormat(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.FormatRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalculatorServiceServer).Format(ctx, req)
}

func handlerConvert(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.ConvertRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(CalculatorServiceServer).Convert(ctx, req)
}

func handlerSeries(srv any, stream grpc.ServerStream) error {
	req := new(types.SeriesRequest)
	if err := stream.RecvMsg(req); err != nil {
		return err
	}
	return srv.(CalculatorServiceServer).Series(req, stream)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the calculator.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CalculatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Now", Handler: handlerNow},
		{MethodName: "Add", Handler: handlerAdd},
		{MethodName: "Diff", Handler: handlerDiff},
		{MethodName: "ZeroSet", Handler: handlerZeroSet},
		{MethodName: "Format", Handler: handlerFormat},
		{MethodName: "Convert", Handler: handlerConvert},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Series",
			Handler:       handlerSeries,
			ServerStreams: true,
		},
	},
	Metadata: "blockberries/calendar/v1/service.cram",
}
