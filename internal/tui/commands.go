package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkosarev/keepsake/models"
)

func (m appModel) cmdPinStatus() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		hasPin, err := server.PinStatus(ctx)
		return pinStatusMsg{hasPin: hasPin, err: err}
	}
}

func (m appModel) cmdSetPin(pin string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return pinSetMsg{err: server.SetPin(ctx, pin)}
	}
}

func (m appModel) cmdVerifyPin(pin string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		valid, err := server.VerifyPin(ctx, pin)
		return pinVerifiedMsg{valid: valid, err: err}
	}
}

func (m appModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		items, err := server.ListItems(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdDecrypt(id string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		data, err := server.DecryptItem(ctx, id)
		return itemDecryptedMsg{id: id, data: data, err: err}
	}
}

func (m appModel) cmdCreate(req models.CreateItemRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		_, err := server.CreateItem(ctx, req)
		return itemCreatedMsg{err: err}
	}
}

func (m appModel) cmdUpdate(id string, req models.UpdateItemRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		_, err := server.UpdateItem(ctx, id, req)
		return itemUpdatedMsg{err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return itemDeletedMsg{err: server.DeleteItem(ctx, id)}
	}
}
