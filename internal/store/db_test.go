package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnect(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{DSN: "x", Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

// TestSQLite_UserRoundTrip exercises the repository against a real
// in-memory SQLite database with the embedded migrations applied.
func TestSQLite_UserRoundTrip(t *testing.T) {
	db := newSQLiteDB(t)
	assert.Equal(t, config.DriverSQLite, db.Driver())

	repo := NewRepositories(db, logger.Nop()).UserRepository
	ctx := context.Background()

	user := testUser()
	_, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	found, err := repo.FindUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.Name, found.Name)
	require.NotNil(t, found.HashedPassword)
	assert.Equal(t, *user.HashedPassword, *found.HashedPassword)
	assert.True(t, user.CreatedAt.Equal(found.CreatedAt))

	duplicate := testUser()
	duplicate.ID = "0190a0b2-7c1e-7d43-9a53-3b2f1c9e8a11"
	_, err = repo.CreateUser(ctx, duplicate)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = repo.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_NullPassword(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	user := testUser()
	user.HashedPassword = nil
	_, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	found, err := repo.FindUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.False(t, found.HasPassword())
}
