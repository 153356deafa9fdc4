package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkosarev/keepsake/internal/adapter"
	"github.com/mkosarev/keepsake/models"
)

type screen int

const (
	screenStarting screen = iota
	screenPinSetup
	screenLocked
	screenList
	screenDetail
	screenCreate
	screenEdit
)

// appModel is the whole client state machine. The PIN gate decides the entry
// screen; everything behind it operates on the owner's vault items. Plaintext
// payloads exist only in detailData and are dropped when the detail screen
// closes or the vault locks.
type appModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	screen screen
	status string
	errMsg string

	pinInputs  []textinput.Model
	pinFocus   int
	settingPin bool

	unlockInput textinput.Model
	verifying   bool

	items   []models.VaultItem
	idx     int
	loading bool

	detailData    *models.VaultData
	revealSecret  bool
	confirmDelete bool
	decrypting    bool

	createStage createStage
	categoryIdx int
	createReq   models.CreateItemRequest
	labelInput  textinput.Model
	dataInputs  []textinput.Model
	dataFocus   int
	noteArea    textarea.Model
	notesArea   textarea.Model
	saving      bool

	editInput  textinput.Model
	editItem   models.VaultItem
	submitting bool

	quitByUser bool
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:    ctx,
		server: server,
		screen: screenStarting,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdPinStatus()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pinStatusMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		if msg.hasPin {
			m.startLocked()
		} else {
			m.startPinSetup()
		}
		return m, nil

	case pinSetMsg:
		m.settingPin = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.enterUnlocked()
		return m, m.cmdLoadItems()

	case pinVerifiedMsg:
		m.verifying = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrNotFound) {
				// PIN removed out of band, fall back to setup.
				m.startPinSetup()
				return m, nil
			}
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		if !msg.valid {
			m.errMsg = "Wrong PIN"
			m.unlockInput.SetValue("")
			return m, nil
		}
		m.enterUnlocked()
		return m, m.cmdLoadItems()

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case itemDecryptedMsg:
		m.decrypting = false
		if msg.err != nil {
			m.screen = screenList
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		if item, ok := m.current(); !ok || item.ID != msg.id {
			// Selection changed while decrypting, discard the plaintext.
			return m, nil
		}
		data := msg.data
		m.detailData = &data
		return m, nil

	case itemCreatedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.resetCreateFlow()
		m.screen = screenList
		m.status = "Item saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()

	case itemUpdatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = "Item updated"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()

	case itemDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.status = "Item deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenPinSetup:
		return m.updatePinSetup(msg)
	case screenLocked:
		return m.updateLocked(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCreate:
		return m.updateCreateFlow(msg)
	case screenEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

// ── PIN gate ─────────────────────────────────────────────────────────────────

func (m *appModel) startPinSetup() {
	pin := textinput.New()
	pin.Placeholder = "PIN (at least 4 digits)"
	pin.Width = 30
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '*'
	pin.Focus()

	confirm := textinput.New()
	confirm.Placeholder = "Repeat PIN"
	confirm.Width = 30
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	m.pinInputs = []textinput.Model{pin, confirm}
	m.pinFocus = 0
	m.settingPin = false
	m.errMsg = ""
	m.screen = screenPinSetup
}

func (m *appModel) startLocked() {
	input := textinput.New()
	input.Placeholder = "PIN"
	input.Width = 30
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	m.unlockInput = input
	m.verifying = false
	m.errMsg = ""
	m.screen = screenLocked
}

func (m *appModel) enterUnlocked() {
	m.screen = screenList
	m.status = ""
	m.errMsg = ""
	m.loading = true
	m.items = nil
	m.idx = 0
}

// lock drops every decrypted payload and returns to the PIN prompt. It never
// talks to the server.
func (m *appModel) lock() {
	m.detailData = nil
	m.revealSecret = false
	m.confirmDelete = false
	m.items = nil
	m.idx = 0
	m.status = ""
	m.startLocked()
}

func (m appModel) updatePinSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab", "shift+tab":
			m.pinInputs[m.pinFocus].Blur()
			m.pinFocus = (m.pinFocus + 1) % len(m.pinInputs)
			m.pinInputs[m.pinFocus].Focus()
			return m, nil
		case "enter":
			if m.settingPin {
				return m, nil
			}

			pin := strings.TrimSpace(m.pinInputs[0].Value())
			confirm := strings.TrimSpace(m.pinInputs[1].Value())

			if !digitsOnly(pin) {
				m.errMsg = "PIN must contain digits only"
				return m, nil
			}
			if len(pin) < 4 {
				m.errMsg = "PIN must be at least 4 digits"
				return m, nil
			}
			if pin != confirm {
				m.errMsg = "PINs do not match"
				return m, nil
			}

			m.errMsg = ""
			m.settingPin = true
			return m, m.cmdSetPin(pin)
		}
	}

	var cmd tea.Cmd
	m.pinInputs[m.pinFocus], cmd = m.pinInputs[m.pinFocus].Update(msg)
	return m, cmd
}

func (m appModel) updateLocked(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "enter" {
		if m.verifying {
			return m, nil
		}

		pin := strings.TrimSpace(m.unlockInput.Value())
		if pin == "" {
			m.errMsg = "Enter your PIN"
			return m, nil
		}

		m.errMsg = ""
		m.verifying = true
		return m, m.cmdVerifyPin(pin)
	}

	var cmd tea.Cmd
	m.unlockInput, cmd = m.unlockInput.Update(msg)
	return m, cmd
}

// ── Item list ────────────────────────────────────────────────────────────────

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		switch keyMsg.String() {
		case "y":
			item, ok := m.current()
			m.confirmDelete = false
			if !ok {
				return m, nil
			}
			return m, m.cmdDelete(item.ID)
		case "n", "N", "esc":
			m.confirmDelete = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "n":
		m.startCreateFlow()
		return m, nil
	case "r":
		m.loading = true
		m.status = ""
		return m, m.cmdLoadItems()
	case "enter":
		item, ok := m.current()
		if !ok {
			m.status = "No items"
			return m, nil
		}
		m.screen = screenDetail
		m.detailData = nil
		m.revealSecret = false
		m.confirmDelete = false
		m.decrypting = true
		return m, m.cmdDecrypt(item.ID)
	case "e":
		item, ok := m.current()
		if !ok {
			m.status = "No items"
			return m, nil
		}
		m.startEdit(item)
		return m, nil
	case "ctrl+d":
		if _, ok := m.current(); !ok {
			m.status = "No items"
			return m, nil
		}
		m.confirmDelete = true
		return m, nil
	case "L":
		m.lock()
		return m, nil
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

// ── Item detail ──────────────────────────────────────────────────────────────

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	item, hasItem := m.current()
	if !hasItem {
		m.closeDetail()
		return m, nil
	}

	if m.confirmDelete {
		switch keyMsg.String() {
		case "y":
			m.closeDetail()
			return m, m.cmdDelete(item.ID)
		case "n", "N", "esc":
			m.confirmDelete = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.closeDetail()
	case " ":
		m.revealSecret = !m.revealSecret
	case "c":
		secret, ok := m.secretToCopy(item)
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(secret); err != nil {
			m.errMsg = fmt.Sprintf("clipboard: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
	case "e":
		m.closeDetail()
		m.startEdit(item)
	case "ctrl+d":
		m.confirmDelete = true
	}

	return m, nil
}

// closeDetail leaves the detail screen and forgets its plaintext.
func (m *appModel) closeDetail() {
	m.detailData = nil
	m.revealSecret = false
	m.confirmDelete = false
	m.decrypting = false
	m.screen = screenList
}

// secretToCopy picks the category's primary secret from the decrypted
// payload. Copy is only offered once the payload is present.
func (m appModel) secretToCopy(item models.VaultItem) (string, bool) {
	if m.detailData == nil {
		return "", false
	}

	switch item.Category {
	case models.CategoryPassword:
		if m.detailData.Password != nil && m.detailData.Password.Password != "" {
			return m.detailData.Password.Password, true
		}
	case models.CategoryCard:
		if m.detailData.Card != nil && m.detailData.Card.Number != "" {
			return m.detailData.Card.Number, true
		}
	case models.CategoryNote:
		if m.detailData.Note != nil && m.detailData.Note.Note != "" {
			return m.detailData.Note.Note, true
		}
	case models.CategoryIdentity:
		if m.detailData.Identity != nil && m.detailData.Identity.FullName != "" {
			return m.detailData.Identity.FullName, true
		}
	}

	if m.detailData.Notes != "" {
		return m.detailData.Notes, true
	}
	return "", false
}

func (m appModel) current() (models.VaultItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.VaultItem{}, false
	}
	return m.items[m.idx], true
}
