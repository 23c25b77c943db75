package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-cred-auth/internal/app"
	"github.com/MKhiriev/go-cred-auth/internal/form"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/MKhiriev/go-cred-auth/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel is the page shown after a successful sign-in. It reads the
// session the server associates with the client's cookie and offers sign-out.
type HomeModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	logger *logger.Logger

	session    models.Session
	version    string
	loading    bool
	signingOut bool
	errMsg     string
}

func NewHomeModel(ctx context.Context, auth service.ClientAuthService, logger *logger.Logger) *HomeModel {
	return &HomeModel{ctx: ctx, auth: auth, logger: logger}
}

// Init implements [tea.Model]. It (re)loads the session every time the page
// is opened.
func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.session = msg.session
		m.version = msg.version
		return m, nil
	case signedOutMsg:
		m.signingOut = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, showToast(form.Toast{Variant: form.VariantDestructive, Description: app.MsgClientSignOutFailed})
		}
		m.session = models.Session{}
		return m, tea.Sequence(
			showToast(form.Toast{Variant: form.VariantDefault, Description: app.MsgClientSignedOut}),
			navigate(RouteAuth),
		)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.Init()
		case key.Matches(msg, keys.signOut):
			if m.signingOut || !m.session.Authenticated() {
				return m, nil
			}
			m.signingOut = true
			return m, m.cmdSignOut()
		case key.Matches(msg, keys.enter):
			if !m.session.Authenticated() {
				return m, navigate(RouteAuth)
			}
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading session...\n")
	case m.session.Authenticated():
		user := m.session.User
		b.WriteString("Signed in as ")
		b.WriteString(valueOrDash(user.Name))
		b.WriteString(" <")
		b.WriteString(user.Email)
		b.WriteString(">\n")
		b.WriteString("User ID:         ")
		b.WriteString(valueOrDash(user.ID))
		b.WriteString("\n")
		b.WriteString("Session expires: ")
		if m.session.Expires != nil {
			b.WriteString(m.session.Expires.Local().Format(time.RFC1123))
		} else {
			b.WriteString("-")
		}
		b.WriteString("\n")
	default:
		b.WriteString("Not signed in.\n")
	}

	b.WriteString("Server version:  ")
	b.WriteString(valueOrDash(m.version))
	b.WriteString("\n")

	if m.signingOut {
		b.WriteString("\nSigning out...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "r: refresh │ o: sign out │ v: version │ q: quit"
	if !m.session.Authenticated() {
		hotKeys = "enter: sign in │ r: refresh │ v: version │ q: quit"
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *HomeModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	log := m.logger

	return func() tea.Msg {
		session, err := auth.Session(ctx)
		if err != nil {
			return sessionLoadedMsg{err: err}
		}

		version, err := auth.Version(ctx)
		if err != nil {
			log.Debug().Err(err).Str("func", "HomeModel.cmdLoad").Msg("server version is unavailable")
		}

		return sessionLoadedMsg{session: session, version: version}
	}
}

func (m *HomeModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return signedOutMsg{err: auth.SignOut(ctx)}
	}
}
