package handler

import (
	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-cred-auth/internal/handler/http"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// Handlers groups the transport handlers enabled by configuration.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP handler when an HTTP address is configured
// and the gRPC health handler when a gRPC address is configured.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, registry *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, registry, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// Close releases resources held by the handlers.
func (h *Handlers) Close() {
	if h.HTTP != nil {
		h.HTTP.Close()
	}
}
