package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/tui"
)

var errNoUI = errors.New("terminal UI is not provided")

// App owns the client process lifecycle.
type App struct {
	ui     UI
	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}

	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGINT / SIGTERM.
// Leaving with ctrl+c is a normal exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Run").Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Str("func", "App.Run").Msg("client stopped")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Str("func", "App.Run").Msg("client interrupted")
		return nil
	default:
		a.logger.Err(err).Str("func", "App.Run").Msg("terminal UI failed")
		return err
	}
}
