package service

import (
	"fmt"

	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/crypto"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/store"
	"github.com/MKhiriev/go-cred-auth/internal/utils"
)

// Services groups the server-side services used by the handlers.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires every server-side service from the repositories and the
// application config.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := crypto.NewPasswordHasher(cfg.PasswordHashCost)

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, hasher, utils.NewUUIDGenerator(), cfg, logger),
		AppInfoService: appInfoService,
	}, nil
}
