// Command calendard serves the calendar calculator over gRPC.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/blockberries/calendar/config"
	calendargrpc "github.com/blockberries/calendar/grpc"
	"github.com/blockberries/calendar/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	cfg.InitLogger()
	log.Info().
		Str("configPath", cfg.Path()).
		Str("listen", cfg.Listen).
		Str("ntp", cfg.NTP.Server).
		Msg("starting calendard")

	calc := server.New(cfg.NTP.Clock(), cfg.ServerOptions()...)
	gs := calendargrpc.NewGRPCServer(calc)

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Fatal().Err(err).Str("listen", cfg.Listen).Msg("could not listen")
	}

	s := grpc.NewServer()
	gs.Register(s)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		gs.Stop(s)
	}()

	log.Info().Str("addr", lis.Addr().String()).Msg("serving")
	if err := s.Serve(lis); err != nil {
		log.Fatal().Err(err).Msg("serve failed")
	}
}
