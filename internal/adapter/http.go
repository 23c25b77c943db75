package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/utils"
	"github.com/MKhiriev/go-cred-auth/models"
)

// Server routes used by the adapter.
const (
	registerPath    = "/api/register"
	signInPath      = "/api/auth/callback/credentials"
	sessionPath     = "/api/auth/session"
	signOutPath     = "/api/auth/signout"
	versionPath     = "/api/version"
	contentTypeJSON = "application/json"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. It POSTs the request as JSON to
// POST /api/register and decodes the created account.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error) {
	var created models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeJSON).
		SetBody(request).
		SetResult(&created).
		Post(registerPath)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.Register").Msg("register request failed")
		return models.PublicUser{}, fmt.Errorf("%w: register request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Msg("registration rejected")
		return models.PublicUser{}, err
	}

	return created, nil
}

// SignIn implements [ServerAdapter]. It POSTs the credentials as JSON to
// POST /api/auth/callback/credentials. On success the server sets the session
// cookie, which the client's cookie jar keeps for later requests.
func (h *httpServerAdapter) SignIn(ctx context.Context, credentials models.Credentials) (models.SignInResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeJSON).
		SetBody(credentials).
		Post(signInPath)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.SignIn").Msg("sign-in request failed")
		return models.SignInResponse{}, fmt.Errorf("%w: sign-in request: %w", ErrServerUnavailable, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusUnauthorized:
	default:
		return models.SignInResponse{}, mapHTTPError(resp)
	}

	var result models.SignInResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.SignInResponse{}, fmt.Errorf("decode sign-in response: %w", err)
	}
	if result.Status == 0 {
		result.Status = resp.StatusCode()
	}

	return result, nil
}

// Session implements [ServerAdapter]. It GETs /api/auth/session; an empty
// JSON object decodes to the zero Session.
func (h *httpServerAdapter) Session(ctx context.Context) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&session).
		Get(sessionPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: session request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// SignOut implements [ServerAdapter]. The server's expired Set-Cookie removes
// the session cookie from the jar.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post(signOutPath)
	if err != nil {
		return fmt.Errorf("%w: sign-out request: %w", ErrServerUnavailable, err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
