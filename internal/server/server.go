package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/handler"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	handlers   *handler.Handlers

	errs chan error

	logger *logger.Logger
}

// NewServer builds an HTTP server for handlers.HTTP and a gRPC server for
// handlers.GRPC, whichever are present.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{handlers: handlers, errs: make(chan error, 2), logger: logger}

	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) Start() error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				_ = s.httpServer.listener.Close()
			}
			return err
		}
	}

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go func() { s.errs <- s.httpServer.serve() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go func() { s.errs <- s.gRPCServer.serve() }()
	}

	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var err error

	// health goes NOT_SERVING before HTTP stops accepting
	if s.gRPCServer != nil {
		err = errors.Join(err, s.gRPCServer.shutdown(ctx))
	}
	if s.httpServer != nil {
		err = errors.Join(err, s.httpServer.shutdown(ctx))
	}
	s.handlers.Close()

	return err
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case serveErr = <-s.errs:
		s.logger.Err(serveErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Join(serveErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return serveErr
}
