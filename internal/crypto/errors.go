package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by [PasswordHasher.Compare] when the
	// candidate password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match hash")

	// ErrMalformedHash is returned when a stored hash cannot be decoded.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrPasswordTooLong is returned when a password exceeds the 72-byte
	// bcrypt input limit.
	ErrPasswordTooLong = errors.New("password is too long")
)
