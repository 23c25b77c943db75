package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/crypto"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/store"
	"github.com/MKhiriev/go-cred-auth/internal/utils"
	"github.com/MKhiriev/go-cred-auth/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification, user registration and session token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and compares candidates against stored hashes.
	hasher crypto.PasswordHasher

	// idGenerator assigns identifiers to new accounts.
	idGenerator IDGenerator

	// now is the clock used for account timestamps.
	now func() time.Time

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher and populated with token parameters from
// cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		idGenerator:    idGenerator,
		now:            func() time.Time { return time.Now().UTC() },
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authorize verifies an e-mail/password pair.
//
// It performs exactly one store read and exactly one hash comparison:
//   - empty e-mail or password → ErrMissingInput, nothing else is done.
//   - no account, or an account without a stored hash → ErrInvalidCredentials.
//     A comparison against a fixed dummy hash is still spent so the response
//     time does not reveal whether the account exists.
//   - hash mismatch → ErrIncorrectPassword.
//   - store failure → wrapped store error.
func (a *authService) Authorize(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Debug().Msg("sign-in attempt with missing email or password")
		return models.User{}, ErrMissingInput
	}

	email := models.NormalizeEmail(credentials.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.CompareDummy(credentials.Password)
		log.Debug().Str("email", email).Msg("no account for email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPassword() {
		a.hasher.CompareDummy(credentials.Password)
		log.Debug().Str("user_id", user.ID).Msg("account has no password login")
		return models.User{}, ErrInvalidCredentials
	}

	err = a.hasher.Compare(*user.HashedPassword, credentials.Password)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, crypto.ErrPasswordMismatch):
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrIncorrectPassword
	default:
		log.Err(err).Str("user_id", user.ID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
}

// RegisterUser creates a new account.
//
// E-mail and password are required and the password must be at least
// models.MinPasswordLength characters. The e-mail is normalised and the
// display name trimmed before the record is stored.
//
// Returns the stored user or:
//   - ErrMissingInput / ErrPasswordTooShort / crypto.ErrPasswordTooLong.
//   - a wrapped store.ErrEmailAlreadyExists when the e-mail is taken.
//   - any other wrapped hashing or storage error.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(request.Email)
	if email == "" || request.Password == "" {
		log.Debug().Msg("registration with missing email or password")
		return models.User{}, ErrMissingInput
	}
	if utf8.RuneCountInString(request.Password) < models.MinPasswordLength {
		log.Debug().Str("email", email).Msg("registration with short password")
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.now()
	user := models.User{
		ID:             a.idGenerator.Generate(),
		Name:           strings.TrimSpace(request.Name),
		Email:          email,
		HashedPassword: &hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
