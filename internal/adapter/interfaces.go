// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the go-cred-auth server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty; the session cookie
// issued at sign-in lives in the resty cookie jar and is replayed
// automatically.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] wrapping
// one of the sentinel values in errors.go, so that callers can use
// [errors.Is] for status checks (e.g. [ErrConflict] for 409) and
// [ResponseBody] to show the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cred-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// authentication server.
type ServerAdapter interface {
	// Register sends {name,email,password} to the registration endpoint and
	// returns the created account. Rejections come back as *ResponseError.
	Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error)

	// SignIn submits credentials to the credentials sign-in endpoint. Both
	// an accepted (200) and a rejected (401) attempt are decoded into the
	// returned SignInResponse without error; other statuses and transport
	// failures are errors.
	SignIn(ctx context.Context, credentials models.Credentials) (models.SignInResponse, error)

	// Session fetches the session bound to the stored cookie.
	Session(ctx context.Context) (models.Session, error)

	// SignOut asks the server to clear the session cookie.
	SignOut(ctx context.Context) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
