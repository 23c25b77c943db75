// Package http implements the HTTP transport layer of the authentication
// server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API: credentials sign-in, registration, session lookup and sign-out.
// Cross-cutting concerns such as request tracing, access logging, per-IP rate
// limiting, metrics and session cookie decoding are handled in this package
// before requests are delegated to the service layer.
package http
