package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cred-auth/internal/app"
	"github.com/MKhiriev/go-cred-auth/internal/crypto"
	"github.com/MKhiriev/go-cred-auth/internal/metrics"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/MKhiriev/go-cred-auth/internal/store"
)

// registrationError is the response for a registration failure: status,
// the plain-text body the client shows verbatim and the metrics result.
type registrationError struct {
	status  int
	message string
	result  string
}

var registrationErrors = []struct {
	target error
	resp   registrationError
}{
	{service.ErrMissingInput, registrationError{http.StatusBadRequest, app.MsgMissingInput, metrics.ResultInvalidInput}},
	{service.ErrPasswordTooShort, registrationError{http.StatusBadRequest, app.MsgPasswordTooShort, metrics.ResultInvalidInput}},
	{crypto.ErrPasswordTooLong, registrationError{http.StatusBadRequest, app.MsgPasswordTooLong, metrics.ResultInvalidInput}},
	{store.ErrEmailAlreadyExists, registrationError{http.StatusConflict, app.MsgEmailAlreadyExists, metrics.ResultConflict}},
}

// registrationErrorFromError maps a RegisterUser error to its response.
// Anything unrecognised is an internal error whose details stay in the log.
func registrationErrorFromError(err error) registrationError {
	for _, e := range registrationErrors {
		if errors.Is(err, e.target) {
			return e.resp
		}
	}
	return registrationError{http.StatusInternalServerError, app.MsgInternalServerError, metrics.ResultError}
}

// signInResultFromError maps an Authorize error to the metrics result.
// Every case answers 401 CredentialsSignin to the client.
func signInResultFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingInput):
		return metrics.ResultInvalidInput
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrIncorrectPassword):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}
