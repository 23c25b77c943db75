// Package grpc implements the gRPC transport of the authentication server:
// the standard grpc.health.v1 service.
package grpc

import (
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-checked service name. The empty name reports
// overall server health.
const ServiceName = "gocredauth.Auth"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the server lifecycle:
// SERVING once [Handler.SetServing] is called, NOT_SERVING after
// [Handler.Shutdown].
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Health starts as NOT_SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// SetServing marks the server healthy.
func (h *Handler) SetServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Msg("gRPC health: SERVING")
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("gRPC health: NOT_SERVING")
}
