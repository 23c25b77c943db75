package store

import (
	"context"

	"github.com/MKhiriev/go-cred-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record. Returns
	// [ErrEmailAlreadyExists] if the e-mail is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given normalised e-mail.
	// Returns [ErrNoUserWasFound] if there is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
