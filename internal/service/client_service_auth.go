package service

import (
	"context"

	"github.com/MKhiriev/go-cred-auth/internal/adapter"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientAuthService returns a ClientAuthService that talks to the server
// through serverAdapter.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

// Register sends the registration request as typed. The server owns
// validation and normalisation.
func (a *clientAuthService) Register(ctx context.Context, request models.RegisterRequest) error {
	created, err := a.adapter.Register(ctx, request)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Register").Msg("registration failed")
		return mapAdapterError(err, ErrRegisterOnServer)
	}

	a.logger.Info().Str("user_id", created.ID).Msg("registered on server")
	return nil
}

// SignIn submits credentials. A rejected attempt comes back as a
// SignInResponse with OK false and a nil error.
func (a *clientAuthService) SignIn(ctx context.Context, credentials models.Credentials) (models.SignInResponse, error) {
	resp, err := a.adapter.SignIn(ctx, credentials)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignIn").Msg("sign-in request failed")
		return models.SignInResponse{}, mapAdapterError(err, ErrLoginOnServer)
	}
	if !resp.OK {
		a.logger.Debug().Int("status", resp.Status).Str("error", resp.Error).Msg("sign-in rejected")
	}

	return resp, nil
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, error) {
	session, err := a.adapter.Session(ctx)
	if err != nil {
		return models.Session{}, mapAdapterError(err, ErrLoginOnServer)
	}

	return session, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	if err := a.adapter.SignOut(ctx); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignOut").Msg("sign-out failed")
		return mapAdapterError(err, ErrLoginOnServer)
	}

	return nil
}

// Version returns the server's application version.
func (a *clientAuthService) Version(ctx context.Context) (string, error) {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err, ErrVersionIsNotSpecified)
	}

	return v, nil
}
