package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes new passwords and checks candidate passwords against
// stored hashes. Implementations must use a slow, salted, adaptive hash.
type PasswordHasher interface {
	// Hash returns the encoded hash of password, salt and cost included.
	// Returns ErrPasswordTooLong if password exceeds the algorithm's input
	// limit.
	Hash(password string) (string, error)

	// Compare checks password against hash. It returns nil on match,
	// ErrPasswordMismatch on mismatch, and ErrMalformedHash when hash cannot
	// be decoded.
	Compare(hash, password string) error

	// CompareDummy performs a comparison against a fixed internal hash and
	// discards the result. Callers use it on the "no such account" path so
	// that response time does not reveal whether an account exists.
	CompareDummy(password string)
}
