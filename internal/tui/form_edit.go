package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkosarev/keepsake/models"
)

// startEdit opens the label editor for one item. Payload changes go through
// the create flow; the server re-encrypts on any data update, so the edit
// screen intentionally touches metadata only.
func (m *appModel) startEdit(item models.VaultItem) {
	input := textinput.New()
	input.Placeholder = "Label"
	input.SetValue(item.Label)
	input.Width = 40
	input.Focus()

	m.editInput = input
	m.editItem = item
	m.submitting = false
	m.errMsg = ""
	m.screen = screenEdit
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.screen = screenList
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			label := strings.TrimSpace(m.editInput.Value())
			if label == "" {
				m.errMsg = "Label is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUpdate(m.editItem.ID, models.UpdateItemRequest{Label: &label})
		}
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}
