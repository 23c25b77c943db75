package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// Start binds every configured listener and serves in the background.
	// Bind errors are returned synchronously.
	Start() error

	// Shutdown gracefully stops the servers, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error

	// RunServer starts the servers and blocks until SIGINT, SIGTERM or
	// SIGQUIT arrives or a server fails, then shuts down gracefully.
	RunServer() error
}
