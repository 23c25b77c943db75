package store

import "github.com/MKhiriev/go-cred-auth/internal/logger"

// Repositories groups every repository the services depend on.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
	}
}
