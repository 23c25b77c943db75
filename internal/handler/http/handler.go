package http

import (
	"time"

	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/metrics"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Handler owns the HTTP routes of the authentication server.
type Handler struct {
	services *service.Services

	cookie         cookieSettings
	requestTimeout time.Duration
	limiter        *RateLimiter

	metrics  metrics.Recorder
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler builds a Handler. When registry is nil metrics are discarded
// and /metrics is not mounted.
//
// The sign-in rate limiter starts a cleanup goroutine; call [Handler.Close]
// on shutdown.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		cookie: cookieSettings{
			name:     cfg.Session.CookieName,
			secure:   cfg.Session.CookieSecure,
			lifetime: cfg.App.TokenDuration,
		},
		requestTimeout: cfg.Server.RequestTimeout,
		limiter: NewRateLimiter(RateLimiterConfig{
			Rate:            rate.Limit(float64(cfg.Server.SignInRatePerMinute) / 60.0),
			Burst:           cfg.Server.SignInBurst,
			CleanupInterval: defaultLimiterCleanup,
		}),
		metrics: metrics.Nop(),
		logger:  logger,
	}

	if registry != nil {
		h.metrics = metrics.NewCollector(registry)
		h.gatherer = registry
	}

	logger.Info().Msg("http handler created")
	return h
}

// Close stops the background goroutines owned by the handler.
func (h *Handler) Close() {
	h.limiter.Stop()
}
