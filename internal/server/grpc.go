package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-cred-auth/internal/config"
	myGRPC "github.com/MKhiriev/go-cred-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-cred-auth/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	l, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}
	g.gRPCNetListener = l
	g.logger.Info().Str("address", l.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) serve() error {
	g.handler.SetServing()
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown flips health to NOT_SERVING, then stops gracefully; if ctx
// expires first the remaining RPCs are cut.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) addr() string {
	if g.gRPCNetListener == nil {
		return ""
	}
	return g.gRPCNetListener.Addr().String()
}
