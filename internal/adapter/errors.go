package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for non-2xx responses, matched with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrServerUnavailable wraps transport failures: refused connections, DNS
// errors, timeouts.
var ErrServerUnavailable = errors.New("server unavailable")

// ResponseError is a non-2xx response. It unwraps to the sentinel matching
// StatusCode.
type ResponseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ResponseError) Error() string {
	if e.Body == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Body)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// ResponseBody returns the response body carried by err, or "" if err is not
// (and does not wrap) a *ResponseError.
func ResponseBody(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Body
	}
	return ""
}
