package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkosarev/keepsake/internal/adapter"
	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/tui"
)

// App ties the server adapter and the terminal UI together.
type App struct {
	server adapter.ServerAdapter
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if server == nil || ui == nil {
		return nil, errors.New("client app requires an adapter and a ui")
	}
	return &App{server: server, ui: ui, logger: logger}, nil
}

// Run starts the vault client and blocks until the user exits. A missing
// token is rejected up front; the UI reports everything else.
func (a *App) Run() error {
	if a.server.Token() == "" {
		return errors.New("no session token configured, set KEEPSAKE_TOKEN")
	}

	if err := a.ui.Run(context.Background()); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("vault client: %w", err)
	}

	return nil
}
