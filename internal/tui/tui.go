// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the client: the sign-in /
// registration form and the session page, routed by [RootModel].
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/MKhiriev/go-cred-auth/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoClientServices = errors.New("client services are not provided")

// TUI runs the Bubble Tea program.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

// New returns a TUI driving services. Extra options are appended to the
// program defaults (alternate screen, context cancellation).
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.AuthService == nil {
		return nil, errNoClientServices
	}

	return &TUI{services: services, buildInfo: buildInfo, logger: logger, options: options}, nil
}

// NewRootModel builds the page router, opening on the form page.
func (t *TUI) NewRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		RouteAuth: NewAuthModel(ctx, t.services.AuthService, t.logger),
		RouteHome: NewHomeModel(ctx, t.services.AuthService, t.logger),
	}

	return NewRootModel(pages, RouteAuth, t.buildInfo)
}

// Run blocks until the user quits or ctx is cancelled. It returns
// [ErrUserQuit] when the user pressed ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)

	finalModel, err := tea.NewProgram(t.NewRootModel(ctx), options...).Run()
	if err != nil {
		return fmt.Errorf("error running terminal UI: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return ErrUserQuit
	}

	return nil
}
