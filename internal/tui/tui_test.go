package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/MKhiriev/go-cred-auth/internal/adapter"
	"github.com/MKhiriev/go-cred-auth/internal/form"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/mock"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/MKhiriev/go-cred-auth/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var cmdType = reflect.TypeOf((tea.Cmd)(nil))

// collect runs cmd and flattens batched and sequenced commands into the
// messages they produce. Only use it on commands that do not sleep.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			inner, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, collect(inner)...)
		}
		return out
	}

	return []tea.Msg{msg}
}

func findMsg[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if found, ok := msg.(T); ok {
			return found
		}
	}
	var zero T
	t.Fatalf("no %T among %v", zero, msgs)
	return zero
}

func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m tea.Model, keyType tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: keyType})
}

func newAuthPage(t *testing.T) (*AuthModel, *mock.MockClientAuthService) {
	t.Helper()
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	return NewAuthModel(context.Background(), auth, logger.Nop()), auth
}

// fillLogin types email and password starting from the default focus.
func fillLogin(m *AuthModel, email, password string) {
	typeText(m, email)
	press(m, tea.KeyTab)
	typeText(m, password)
}

// submitAndComplete presses enter, runs the request and feeds the result
// back, returning the messages the page emitted afterwards.
func submitAndComplete(t *testing.T, m *AuthModel) []tea.Msg {
	t.Helper()
	_, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	done := findMsg[submitDoneMsg](t, collect(cmd))
	_, cmd = m.Update(done)
	return collect(cmd)
}

// ─────────────────────────────────────────────
// AuthModel
// ─────────────────────────────────────────────

func TestAuthModel_TypingFillsController(t *testing.T) {
	m, _ := newAuthPage(t)
	fillLogin(m, "alice@example.com", "secret1")

	assert.Equal(t, form.Values{Email: "alice@example.com", Password: "secret1"}, m.controller.Values())
}

func TestAuthModel_ToggleShowsNameField(t *testing.T) {
	m, _ := newAuthPage(t)

	assert.NotContains(t, m.View(), "Name")
	assert.Contains(t, m.View(), "Don't have an account?")

	press(m, tea.KeyCtrlT)
	assert.Equal(t, form.ModeRegister, m.controller.Mode())
	assert.Contains(t, m.View(), "Name")
	assert.Contains(t, m.View(), "Already have an account?")

	// name is reachable only in REGISTER mode
	press(m, tea.KeyShiftTab)
	assert.Equal(t, fieldName, m.focus)

	press(m, tea.KeyCtrlT)
	assert.Equal(t, fieldEmail, m.focus)

	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	assert.Equal(t, fieldEmail, m.focus)
}

func TestAuthModel_ShortPasswordShowsInlineError(t *testing.T) {
	m, _ := newAuthPage(t)
	fillLogin(m, "alice@example.com", "12345")

	_, cmd := press(m, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.False(t, m.controller.Busy())
	assert.Contains(t, m.View(), "Password must be at least 6 characters!")
}

func TestAuthModel_LoginSuccess(t *testing.T) {
	m, auth := newAuthPage(t)
	fillLogin(m, "alice@example.com", "secret1")

	auth.EXPECT().
		SignIn(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "secret1"}).
		Return(models.SignInResponse{OK: true, Status: http.StatusOK, URL: "/"}, nil)

	msgs := submitAndComplete(t, m)

	require.Len(t, msgs, 2)
	assert.Equal(t, ShowToast{Toast: form.Toast{Variant: form.VariantDefault, Description: "Login successful!"}}, msgs[0])
	assert.Equal(t, NavigateTo{Page: RouteHome}, msgs[1])
	assert.Empty(t, m.inputs[fieldEmail].Value())
	assert.Empty(t, m.inputs[fieldPassword].Value())
	assert.False(t, m.controller.Busy())
}

func TestAuthModel_LoginRejectedKeepsFields(t *testing.T) {
	m, auth := newAuthPage(t)
	fillLogin(m, "alice@example.com", "wrong-pass")

	auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(models.SignInResponse{Status: http.StatusUnauthorized, Error: models.SignInErrorCredentials}, nil)

	msgs := submitAndComplete(t, m)

	assert.Equal(t, []tea.Msg{ShowToast{Toast: form.Toast{Variant: form.VariantDestructive, Description: "Failed to login!"}}}, msgs)
	assert.Equal(t, "alice@example.com", m.inputs[fieldEmail].Value())
	assert.Equal(t, "wrong-pass", m.inputs[fieldPassword].Value())
}

func TestAuthModel_RegisterFailureShowsServerMessage(t *testing.T) {
	m, auth := newAuthPage(t)
	press(m, tea.KeyCtrlT)
	press(m, tea.KeyShiftTab)
	typeText(m, "Alice")
	press(m, tea.KeyTab)
	typeText(m, "alice@example.com")
	press(m, tea.KeyTab)
	typeText(m, "secret1")

	auth.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"}).
		Return(fmt.Errorf("%w: %w", service.ErrRegisterOnServer,
			&adapter.ResponseError{StatusCode: http.StatusConflict, Body: "Email already in use", Err: adapter.ErrConflict}))

	msgs := submitAndComplete(t, m)

	assert.Equal(t, []tea.Msg{ShowToast{Toast: form.Toast{Variant: form.VariantDestructive, Description: "Email already in use"}}}, msgs)
	assert.Equal(t, "Alice", m.inputs[fieldName].Value())
}

func TestAuthModel_RegisterSuccessResetsForm(t *testing.T) {
	m, auth := newAuthPage(t)
	press(m, tea.KeyCtrlT)
	fillLogin(m, "alice@example.com", "secret1")

	auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)

	msgs := submitAndComplete(t, m)

	assert.Equal(t, []tea.Msg{ShowToast{Toast: form.Toast{Variant: form.VariantDefault, Description: "Registration successful"}}}, msgs)
	assert.Empty(t, m.inputs[fieldEmail].Value())
	assert.Equal(t, form.ModeRegister, m.controller.Mode())
}

func TestAuthModel_BusyBlocksResubmitAndTyping(t *testing.T) {
	m, _ := newAuthPage(t)
	fillLogin(m, "alice@example.com", "secret1")

	_, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.controller.Busy())
	assert.Contains(t, m.View(), m.spinner.View())

	_, cmd = press(m, tea.KeyEnter)
	assert.Nil(t, cmd)

	typeText(m, "x")
	assert.Equal(t, "secret1", m.inputs[fieldPassword].Value())
}

func TestAuthModel_ServerUnavailable(t *testing.T) {
	m, auth := newAuthPage(t)
	fillLogin(m, "alice@example.com", "secret1")

	auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(models.SignInResponse{}, fmt.Errorf("%w: dial tcp", service.ErrServerUnavailable))

	msgs := submitAndComplete(t, m)

	assert.Equal(t, []tea.Msg{ShowToast{Toast: form.Toast{Variant: form.VariantDestructive, Description: "Failed to login!"}}}, msgs)
	assert.Contains(t, m.View(), "Server is unavailable")
	assert.False(t, m.controller.Busy())
}

// ─────────────────────────────────────────────
// HomeModel
// ─────────────────────────────────────────────

func TestHomeModel_LoadsSession(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	m := NewHomeModel(context.Background(), auth, logger.Nop())

	expires := time.Date(2026, 11, 18, 12, 0, 0, 0, time.UTC)
	auth.EXPECT().Session(gomock.Any()).Return(models.Session{
		User:    &models.PublicUser{ID: "u-1", Name: "Alice", Email: "alice@example.com"},
		Expires: &expires,
	}, nil)
	auth.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	cmd := m.Init()
	assert.True(t, m.loading)

	for _, msg := range collect(cmd) {
		m.Update(msg)
	}

	view := m.View()
	assert.Contains(t, view, "Signed in as Alice <alice@example.com>")
	assert.Contains(t, view, "u-1")
	assert.Contains(t, view, "1.2.3")
	assert.False(t, m.loading)
}

func TestHomeModel_VersionErrorIsNotFatal(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	m := NewHomeModel(context.Background(), auth, logger.Nop())

	auth.EXPECT().Session(gomock.Any()).Return(models.Session{}, nil)
	auth.EXPECT().Version(gomock.Any()).Return("", service.ErrVersionIsNotSpecified)

	for _, msg := range collect(m.Init()) {
		m.Update(msg)
	}

	assert.Contains(t, m.View(), "Not signed in.")
	assert.Empty(t, m.errMsg)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []tea.Msg{NavigateTo{Page: RouteAuth}}, collect(cmd))
}

func TestHomeModel_SessionError(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	m := NewHomeModel(context.Background(), auth, logger.Nop())

	auth.EXPECT().Session(gomock.Any()).Return(models.Session{}, service.ErrServerUnavailable)

	for _, msg := range collect(m.Init()) {
		m.Update(msg)
	}

	assert.Equal(t, "Server is unavailable, check the address and try again", m.errMsg)
}

func TestHomeModel_SignOut(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected []tea.Msg
	}{
		{
			name: "success",
			expected: []tea.Msg{
				ShowToast{Toast: form.Toast{Variant: form.VariantDefault, Description: "Signed out"}},
				NavigateTo{Page: RouteAuth},
			},
		},
		{
			name: "failure",
			err:  errors.New("boom"),
			expected: []tea.Msg{
				ShowToast{Toast: form.Toast{Variant: form.VariantDestructive, Description: "Failed to sign out!"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mock.NewMockClientAuthService(gomock.NewController(t))
			m := NewHomeModel(context.Background(), auth, logger.Nop())
			m.session = models.Session{User: &models.PublicUser{ID: "u-1", Email: "alice@example.com"}}

			auth.EXPECT().SignOut(gomock.Any()).Return(tt.err)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
			require.NotNil(t, cmd)
			assert.True(t, m.signingOut)

			// a second press while signing out is ignored
			_, again := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
			assert.Nil(t, again)

			var out []tea.Msg
			for _, msg := range collect(cmd) {
				_, next := m.Update(msg)
				out = append(out, collect(next)...)
			}

			assert.Equal(t, tt.expected, out)
			assert.False(t, m.signingOut)
			assert.Equal(t, tt.err == nil, !m.session.Authenticated())
		})
	}
}

// ─────────────────────────────────────────────
// RootModel
// ─────────────────────────────────────────────

type stubPage struct {
	name  string
	inits int
	last  tea.Msg
}

func (p *stubPage) Init() tea.Cmd                           { p.inits++; return nil }
func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) { p.last = msg; return p, nil }
func (p *stubPage) View() string                            { return "page:" + p.name }

func newTestRoot() (RootModel, *stubPage, *stubPage) {
	authPage := &stubPage{name: "auth"}
	homePage := &stubPage{name: "home"}
	root := NewRootModel(map[string]tea.Model{RouteAuth: authPage, RouteHome: homePage}, RouteAuth,
		models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"))
	return root, authPage, homePage
}

func update(r RootModel, msg tea.Msg) RootModel {
	next, _ := r.Update(msg)
	return next.(RootModel)
}

func TestRootModel_Navigation(t *testing.T) {
	root, _, homePage := newTestRoot()
	assert.Equal(t, RouteAuth, root.Page())

	root = update(root, NavigateTo{Page: "/missing"})
	assert.Equal(t, RouteAuth, root.Page())

	root = update(root, NavigateTo{Page: RouteHome})
	assert.Equal(t, RouteHome, root.Page())
	assert.Equal(t, 1, homePage.inits)
	assert.Contains(t, root.View(), "page:home")
}

func TestRootModel_DelegatesToCurrentPage(t *testing.T) {
	root, authPage, _ := newTestRoot()

	root = update(root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})

	assert.Equal(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")}, authPage.last)
	assert.NotContains(t, root.View(), "ABOUT")
}

func TestRootModel_BuildInfoOnHome(t *testing.T) {
	root, _, _ := newTestRoot()
	root = update(root, NavigateTo{Page: RouteHome})

	root = update(root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	view := root.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "1.0.0")
	assert.Contains(t, view, "abc123")

	root = update(root, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, root.View(), "page:home")
}

func TestRootModel_Toasts(t *testing.T) {
	root, _, _ := newTestRoot()

	next, cmd := root.Update(ShowToast{Toast: form.Toast{Description: "Login successful!"}})
	root = next.(RootModel)
	assert.NotNil(t, cmd)
	assert.Contains(t, root.View(), "Login successful!")

	root = update(root, ShowToast{Toast: form.Toast{Variant: form.VariantDestructive, Description: "Failed to login!"}})
	assert.NotContains(t, root.View(), "Login successful!")

	// expiry of the first toast must not hide the second one
	root = update(root, clearToastMsg{seq: 1})
	assert.Contains(t, root.View(), "Failed to login!")

	root = update(root, clearToastMsg{seq: 2})
	assert.NotContains(t, root.View(), "Failed to login!")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot()

	next, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, next.(RootModel).QuitByUser())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// ─────────────────────────────────────────────
// Misc
// ─────────────────────────────────────────────

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "sentinel", err: fmt.Errorf("x: %w", service.ErrServerUnavailable), expected: "Server is unavailable, check the address and try again"},
		{name: "dial", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), expected: "Server is unavailable, check the address and try again"},
		{name: "other", err: errors.New("boom"), expected: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizeServerUnavailableError(tt.err))
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoClientServices)

	_, err = New(&service.ClientServices{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoClientServices)

	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	ui, err := New(&service.ClientServices{AuthService: auth}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	root := ui.NewRootModel(context.Background())
	assert.Equal(t, RouteAuth, root.Page())
	assert.Contains(t, root.View(), "LOGIN")
}
