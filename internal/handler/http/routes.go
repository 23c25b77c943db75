package http

import (
	"github.com/MKhiriev/go-cred-auth/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes served by Init.
const (
	routeRegister = "/api/register"
	routeSignIn   = "/api/auth/callback/credentials"
	routeSession  = "/api/auth/session"
	routeSignOut  = "/api/auth/signout"
	routeVersion  = "/api/version"
	routeMetrics  = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// rate-limited credential endpoints
	router.Group(func(r chi.Router) {
		r.Use(h.limiter.Middleware(h.metrics))
		r.Post(routeRegister, h.register)
		r.Post(routeSignIn, h.signIn)
	})

	router.With(h.withSession).Get(routeSession, h.session)
	router.Post(routeSignOut, h.signOut)
	router.Get(routeVersion, h.getServerVersion)

	if h.gatherer != nil {
		router.Handle(routeMetrics, metrics.Handler(h.gatherer))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
