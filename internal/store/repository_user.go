package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/models"
)

// userRepository is the SQL implementation of [UserRepository] for both the
// PostgreSQL and SQLite dialects. It handles user account creation and lookup
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. The caller assigns ID and
// timestamps; the stored record is returned unchanged.
//
// Error handling:
//   - unique violation (PostgreSQL 23505, SQLITE_CONSTRAINT_UNIQUE) → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.wrap(ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose e-mail equals email. The lookup is
// exact; callers normalise the address first. It runs exactly one query.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - transient driver error → wrapped [ErrExecutingQuery] and [ErrStoreUnavailable].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder(), email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, err
	}

	user, err := r.findOne(ctx, query, args)
	if err == nil || errors.Is(err, ErrNoUserWasFound) {
		return user, err
	}

	log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
	return models.User{}, r.wrap(ErrExecutingQuery, err)
}

// wrap attaches op to a driver error, adding [ErrStoreUnavailable] when the
// error is transient.
func (r *userRepository) wrap(op, err error) error {
	if r.db.classify(err) == Transient {
		return fmt.Errorf("%w: %w: %w", op, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}

func (r *userRepository) findOne(ctx context.Context, query string, args []any) (models.User, error) {
	var (
		user           models.User
		hashedPassword sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Name, &user.Email, &hashedPassword, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, err
	}

	if hashedPassword.Valid {
		user.HashedPassword = &hashedPassword.String
	}

	return user, nil
}
