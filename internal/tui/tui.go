// Package tui implements the terminal vault client.
//
// The client is a single bubbletea state machine: a PIN gate in front of the
// vault (setup or unlock), then the item list with detail, create, edit, and
// delete flows. Decrypted payloads live only in the running model and only
// while the detail screen is open; locking drops them without a server call.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkosarev/keepsake/internal/adapter"
	"github.com/mkosarev/keepsake/internal/logger"
)

// ErrUserQuit is returned by Run when the user exits the client.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func New(server adapter.ServerAdapter, logger *logger.Logger) (*TUI, error) {
	if server == nil {
		return nil, errors.New("server adapter is nil")
	}
	return &TUI{server: server, logger: logger}, nil
}

// Run starts the vault client and blocks until the user quits. Returns
// [ErrUserQuit] on a normal user-initiated exit.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.server)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
