package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cred-auth/internal/adapter"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/mock"
	"github.com/MKhiriev/go-cred-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuthSvc(t *testing.T) (ClientAuthService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	return NewClientAuthService(mockAdapter, logger.Nop()), mockAdapter
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)
	req := models.RegisterRequest{Name: "Alice", Email: "Alice@Example.com", Password: "secret1"}

	mockAdapter.EXPECT().
		Register(gomock.Any(), req).
		Return(models.PublicUser{ID: "u-1", Email: "alice@example.com"}, nil)

	require.NoError(t, svc.Register(context.Background(), req))
}

func TestClientAuthService_Register_ServerMessageKept(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)
	respErr := &adapter.ResponseError{StatusCode: http.StatusConflict, Body: "Email already in use", Err: adapter.ErrConflict}

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.PublicUser{}, respErr)

	err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: "secret1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, "Email already in use", ServerMessage(err))
}

func TestClientAuthService_Register_ServerUnavailable(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(models.PublicUser{}, fmt.Errorf("%w: dial tcp: refused", adapter.ErrServerUnavailable))

	err := svc.Register(context.Background(), models.RegisterRequest{Email: "a@b.c", Password: "secret1"})

	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.NotErrorIs(t, err, ErrRegisterOnServer)
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestClientAuthService_SignIn_Success(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)
	creds := models.Credentials{Email: "alice@example.com", Password: "secret1"}
	want := models.SignInResponse{OK: true, Status: http.StatusOK, URL: "/"}

	mockAdapter.EXPECT().SignIn(gomock.Any(), creds).Return(want, nil)

	got, err := svc.SignIn(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientAuthService_SignIn_RejectedIsNotAnError(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)
	want := models.SignInResponse{Status: http.StatusUnauthorized, Error: models.SignInErrorCredentials}

	mockAdapter.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(want, nil)

	got, err := svc.SignIn(context.Background(), models.Credentials{Email: "a@b.c", Password: "nope"})

	require.NoError(t, err)
	assert.False(t, got.OK)
	assert.Equal(t, models.SignInErrorCredentials, got.Error)
}

func TestClientAuthService_SignIn_TransportError(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(models.SignInResponse{}, &adapter.ResponseError{StatusCode: http.StatusTooManyRequests, Err: adapter.ErrTooManyRequests})

	_, err := svc.SignIn(context.Background(), models.Credentials{Email: "a@b.c", Password: "secret1"})

	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, adapter.ErrTooManyRequests)
}

// ── Session / SignOut / Version ──────────────────────────────────────────────

func TestClientAuthService_Session(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)
	session := models.Session{User: &models.PublicUser{ID: "u-1"}}

	mockAdapter.EXPECT().Session(gomock.Any()).Return(session, nil)

	got, err := svc.Session(context.Background())

	require.NoError(t, err)
	assert.True(t, got.Authenticated())
}

func TestClientAuthService_SignOut_Error(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().SignOut(gomock.Any()).Return(fmt.Errorf("%w: timeout", adapter.ErrServerUnavailable))

	assert.ErrorIs(t, svc.SignOut(context.Background()), ErrServerUnavailable)
}

func TestClientAuthService_Version(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)

	v, err := svc.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)
}

// ── ServerMessage ────────────────────────────────────────────────────────────

func TestServerMessage(t *testing.T) {
	assert.Empty(t, ServerMessage(nil))
	assert.Equal(t, "boom", ServerMessage(errors.New("boom")))

	wrapped := fmt.Errorf("%w: %w", ErrRegisterOnServer, &adapter.ResponseError{Body: "Password must be at least 6 characters", Err: adapter.ErrBadRequest})
	assert.Equal(t, "Password must be at least 6 characters", ServerMessage(wrapped))
}
