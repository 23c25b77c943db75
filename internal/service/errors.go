package service

import "errors"

// Credential verification and registration errors.
var (
	// ErrMissingInput is returned when the e-mail or the password is empty.
	ErrMissingInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned when no account exists for the
	// e-mail or the account has no stored password. The two cases are
	// deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIncorrectPassword is returned when the account exists but the
	// password does not match the stored hash.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrPasswordTooShort is returned by registration when the password is
	// shorter than models.MinPasswordLength characters.
	ErrPasswordTooShort = errors.New("password is too short")
)

// Session token errors.
var (
	// ErrTokenCreationFailed is returned when a session token cannot be signed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned when a session token fails
	// signature, issuer or expiry validation.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// ErrVersionIsNotSpecified is returned when the application version is empty.
var ErrVersionIsNotSpecified = errors.New("version is not specified")

// Client-side errors.
var (
	// ErrServerUnavailable is returned by client services when the server
	// could not be reached at all.
	ErrServerUnavailable = errors.New("server is unavailable")

	// ErrRegisterOnServer is returned when the server rejected a registration.
	ErrRegisterOnServer = errors.New("registration on server failed")

	// ErrLoginOnServer is returned when a sign-in request failed for a reason
	// other than rejected credentials.
	ErrLoginOnServer = errors.New("login on server failed")
)
