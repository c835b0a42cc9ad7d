package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/sheetcharts/internal/config"
	myGRPC "github.com/MKhiriev/sheetcharts/internal/handler/grpc"
	"github.com/MKhiriev/sheetcharts/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

// RunServer serves until Shutdown and keeps the health status current while
// ctx is alive.
func (g *grpcServer) RunServer(ctx context.Context) {
	go g.handler.Watch(ctx, 0)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown(context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
