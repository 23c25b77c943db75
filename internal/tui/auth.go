// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-cred-auth/internal/form"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

// AuthModel renders a [form.Controller] as a Bubble Tea page.
//
// The network call of a submission runs as a [tea.Cmd]; its [form.Result]
// comes back as a message and is applied with [form.Controller.Complete] on
// the UI loop. Toasts and navigation raised by the controller are forwarded
// to [RootModel].
type AuthModel struct {
	ctx        context.Context
	controller *form.Controller
	toasts     *toastQueue
	routes     *routeRecorder
	logger     *logger.Logger

	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	fieldErr string
	errMsg   string
}

// NewAuthModel creates the sign-in / registration page in LOGIN mode with
// the email field focused.
func NewAuthModel(ctx context.Context, auth form.Authenticator, logger *logger.Logger) *AuthModel {
	toasts := &toastQueue{}
	routes := &routeRecorder{}

	inputs := make([]textinput.Model, 3)

	inputs[fieldName] = textinput.New()
	inputs[fieldName].Placeholder = "name"
	inputs[fieldName].CharLimit = 128
	inputs[fieldName].Width = 40

	inputs[fieldEmail] = textinput.New()
	inputs[fieldEmail].Placeholder = "email"
	inputs[fieldEmail].CharLimit = 254
	inputs[fieldEmail].Width = 40

	inputs[fieldPassword] = textinput.New()
	inputs[fieldPassword].Placeholder = "password"
	inputs[fieldPassword].CharLimit = 256
	inputs[fieldPassword].Width = 40
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'

	m := &AuthModel{
		ctx:        ctx,
		controller: form.NewController(auth, toasts, routes),
		toasts:     toasts,
		routes:     routes,
		logger:     logger,
		inputs:     inputs,
		focus:      fieldEmail,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.inputs[m.focus].Focus()

	return m
}

// Init implements [tea.Model].
func (m *AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - submitDoneMsg: applies the request outcome to the controller.
//   - ctrl+t: switches between LOGIN and REGISTER, keeping the fields.
//   - tab / shift+tab: moves focus across the visible fields.
//   - enter: validates and submits unless a request is in flight.
//
// Other key events go to the focused input; they are dropped while busy.
func (m *AuthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return m, m.complete(msg.result)
	case spinner.TickMsg:
		if !m.controller.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.toggle):
			m.controller.Toggle()
			m.fieldErr = ""
			if !m.visible(m.focus) {
				m.setFocus(fieldEmail)
			}
			return m, nil
		case key.Matches(msg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}

		if m.controller.Busy() {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.pushValues()
	return m, cmd
}

// View implements [tea.Model].
func (m *AuthModel) View() string {
	mode := m.controller.Mode()

	var b strings.Builder
	if mode == form.ModeRegister {
		b.WriteString("Name     │ ")
		b.WriteString(m.inputs[fieldName].View())
		b.WriteString("\n")
	}
	b.WriteString("Email    │ ")
	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("\n")

	if m.fieldErr != "" {
		b.WriteString("         │ ")
		b.WriteString(errorStyle.Render(m.fieldErr))
		b.WriteString("\n")
	}

	b.WriteString("\n[")
	b.WriteString(mode.Title())
	b.WriteString("]")
	if m.controller.Busy() {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")
	b.WriteString(mode.TogglePrompt())
	b.WriteString(" ")
	b.WriteString(linkStyle.Render(mode.ToggleLabel()))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(strings.ToUpper(mode.Title()), strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+t: "+strings.ToLower(mode.ToggleLabel())+" │ enter: submit")
}

func (m *AuthModel) submit() tea.Cmd {
	m.pushValues()

	req, err := m.controller.Begin()
	if err != nil {
		var vErr *form.ValidationError
		if errors.As(err, &vErr) {
			m.fieldErr = vErr.Message
		}
		return nil
	}

	m.fieldErr = ""
	m.errMsg = ""

	ctx := m.ctx
	controller := m.controller
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return submitDoneMsg{result: controller.Execute(ctx, req)}
	})
}

func (m *AuthModel) complete(res form.Result) tea.Cmd {
	err := m.controller.Complete(res)
	if err != nil {
		m.logger.Debug().Err(err).
			Str("func", "AuthModel.complete").
			Str("mode", res.Request.Mode.String()).
			Msg("form submission failed")
	}
	if errors.Is(err, service.ErrServerUnavailable) {
		m.errMsg = humanizeServerUnavailableError(err)
	}

	m.pullValues()

	cmds := m.toasts.drain()
	cmds = append(cmds, m.routes.drain()...)
	if len(cmds) == 0 {
		return nil
	}
	return tea.Sequence(cmds...)
}

// pushValues copies the inputs into the controller.
func (m *AuthModel) pushValues() {
	m.controller.SetName(m.inputs[fieldName].Value())
	m.controller.SetEmail(m.inputs[fieldEmail].Value())
	m.controller.SetPassword(m.inputs[fieldPassword].Value())
}

// pullValues copies the controller fields back, e.g. after a reset.
func (m *AuthModel) pullValues() {
	values := m.controller.Values()
	m.inputs[fieldName].SetValue(values.Name)
	m.inputs[fieldEmail].SetValue(values.Email)
	m.inputs[fieldPassword].SetValue(values.Password)
}

func (m *AuthModel) visible(field int) bool {
	return field != fieldName || m.controller.Mode() == form.ModeRegister
}

func (m *AuthModel) moveFocus(step int) {
	next := m.focus
	for range m.inputs {
		next = (next + step + len(m.inputs)) % len(m.inputs)
		if m.visible(next) {
			break
		}
	}
	m.setFocus(next)
}

func (m *AuthModel) setFocus(field int) {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.inputs[m.focus].Focus()
}
