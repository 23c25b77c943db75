package service

import (
	"context"

	"github.com/MKhiriev/go-cred-auth/models"
)

// AuthService verifies credentials, registers accounts and manages session
// tokens on the server.
type AuthService interface {
	// Authorize verifies an e-mail/password pair and returns the matching
	// user. Errors: ErrMissingInput, ErrInvalidCredentials,
	// ErrIncorrectPassword, or a wrapped store error.
	Authorize(ctx context.Context, credentials models.Credentials) (models.User, error)

	// RegisterUser creates an account with a hashed password.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// CreateToken issues a signed session token for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces identifiers for new users.
type IDGenerator interface {
	Generate() string
}

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientAuthService is the client-side view of the authentication API.
type ClientAuthService interface {
	// Register creates an account on the server. A rejection is returned as
	// an error whose text is the server's message.
	Register(ctx context.Context, request models.RegisterRequest) error

	// SignIn submits credentials. A rejected attempt is not an error: it is
	// reported through the returned SignInResponse.
	SignIn(ctx context.Context, credentials models.Credentials) (models.SignInResponse, error)

	// Session returns the session the server associates with the client's
	// cookie; the zero Session means "signed out".
	Session(ctx context.Context) (models.Session, error)

	// SignOut clears the session on the server and locally.
	SignOut(ctx context.Context) error

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
