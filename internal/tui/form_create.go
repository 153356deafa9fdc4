package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkosarev/keepsake/models"
)

type createStage int

const (
	createStageNone createStage = iota
	createStageCategory
	createStageLabel
	createStageData
	createStageNotes
)

var createCategories = []models.Category{
	models.CategoryPassword,
	models.CategoryCard,
	models.CategoryNote,
	models.CategoryIdentity,
	models.CategoryOther,
}

func (m *appModel) startCreateFlow() {
	m.screen = screenCreate
	m.createStage = createStageCategory
	m.categoryIdx = 0
	m.createReq = models.CreateItemRequest{}
	m.dataInputs = nil
	m.dataFocus = 0
	m.saving = false
	m.errMsg = ""
	m.status = ""
}

func (m *appModel) resetCreateFlow() {
	m.createStage = createStageNone
	m.createReq = models.CreateItemRequest{}
	m.dataInputs = nil
	m.dataFocus = 0
	m.saving = false
	m.errMsg = ""
}

func (m appModel) updateCreateFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.createStage {
	case createStageCategory:
		return m.updateCreateCategory(msg)
	case createStageLabel:
		return m.updateCreateLabel(msg)
	case createStageData:
		return m.updateCreateData(msg)
	case createStageNotes:
		return m.updateCreateNotes(msg)
	default:
		return m, nil
	}
}

func (m appModel) updateCreateCategory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.resetCreateFlow()
		m.screen = screenList
		return m, nil
	case "up", "k":
		if m.categoryIdx > 0 {
			m.categoryIdx--
		}
	case "down", "j":
		if m.categoryIdx < len(createCategories)-1 {
			m.categoryIdx++
		}
	case "1", "2", "3", "4", "5":
		m.categoryIdx = int(keyMsg.String()[0] - '1')
		m.selectCategory()
		return m, nil
	case "enter":
		m.selectCategory()
		return m, nil
	}

	return m, nil
}

func (m *appModel) selectCategory() {
	m.createReq = models.CreateItemRequest{Category: createCategories[m.categoryIdx]}
	m.errMsg = ""
	m.createStage = createStageLabel

	label := textinput.New()
	label.Placeholder = "Label"
	label.Width = 40
	label.Focus()
	m.labelInput = label
}

func (m appModel) updateCreateLabel(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetCreateFlow()
			m.screen = screenList
			return m, nil
		case "enter":
			label := strings.TrimSpace(m.labelInput.Value())
			if label == "" {
				m.errMsg = "Label is required"
				return m, nil
			}

			m.createReq.Label = label
			m.errMsg = ""
			m.createStage = createStageData
			m.initDataInputs()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	return m, cmd
}

func (m *appModel) initDataInputs() {
	m.dataInputs = nil
	m.dataFocus = 0

	switch m.createReq.Category {
	case models.CategoryPassword:
		username := newFormInput("Username", 40)
		username.Focus()
		password := newSecretInput("Password", 40)
		url := newFormInput("URL (optional)", 40)
		m.dataInputs = []textinput.Model{username, password, url}

	case models.CategoryCard:
		number := newFormInput("Card number", 40)
		number.Focus()
		holder := newFormInput("Cardholder name", 40)
		expiry := newFormInput("Expiry (MM/YY)", 40)
		cvv := newSecretInput("CVV", 40)
		m.dataInputs = []textinput.Model{number, holder, expiry, cvv}

	case models.CategoryNote:
		area := textarea.New()
		area.Placeholder = "Note text"
		area.SetWidth(54)
		area.SetHeight(6)
		area.Focus()
		m.noteArea = area

	case models.CategoryIdentity:
		fullName := newFormInput("Full name", 40)
		fullName.Focus()
		email := newFormInput("Email (optional)", 40)
		phone := newFormInput("Phone (optional)", 40)
		address := newFormInput("Address (optional)", 40)
		dob := newFormInput("Date of birth (optional)", 40)
		m.dataInputs = []textinput.Model{fullName, email, phone, address, dob}

	case models.CategoryOther:
		// Free-form payload, only the trailing notes editor applies.
		m.startNotesStage()
	}
}

func newFormInput(placeholder string, width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = width
	return input
}

func newSecretInput(placeholder string, width int) textinput.Model {
	input := newFormInput(placeholder, width)
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	return input
}

func (m appModel) updateCreateData(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.createReq.Category == models.CategoryNote {
		return m.updateCreateNoteText(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetCreateFlow()
			m.screen = screenList
			return m, nil
		case "tab":
			m.dataInputs[m.dataFocus].Blur()
			m.dataFocus = (m.dataFocus + 1) % len(m.dataInputs)
			m.dataInputs[m.dataFocus].Focus()
			return m, nil
		case "shift+tab":
			m.dataInputs[m.dataFocus].Blur()
			m.dataFocus = (m.dataFocus - 1 + len(m.dataInputs)) % len(m.dataInputs)
			m.dataInputs[m.dataFocus].Focus()
			return m, nil
		case "enter":
			if err := m.collectTypedData(); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.startNotesStage()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.dataInputs[m.dataFocus], cmd = m.dataInputs[m.dataFocus].Update(msg)
	return m, cmd
}

func (m appModel) updateCreateNoteText(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetCreateFlow()
			m.screen = screenList
			return m, nil
		case "ctrl+s":
			text := strings.TrimSpace(m.noteArea.Value())
			if text == "" {
				m.errMsg = "Note text is required"
				return m, nil
			}
			m.createReq.Data.Note = &models.NoteData{Note: text}
			m.errMsg = ""
			m.startNotesStage()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.noteArea, cmd = m.noteArea.Update(msg)
	return m, cmd
}

func (m *appModel) collectTypedData() error {
	values := make([]string, len(m.dataInputs))
	for i := range m.dataInputs {
		values[i] = strings.TrimSpace(m.dataInputs[i].Value())
	}

	switch m.createReq.Category {
	case models.CategoryPassword:
		if values[0] == "" || values[1] == "" {
			return fmt.Errorf("username and password are required")
		}
		m.createReq.Data.Password = &models.PasswordData{
			Username: values[0],
			Password: values[1],
			URL:      values[2],
		}

	case models.CategoryCard:
		if values[0] == "" || values[3] == "" {
			return fmt.Errorf("card number and CVV are required")
		}
		m.createReq.Data.Card = &models.CardData{
			Number:     values[0],
			HolderName: values[1],
			ExpiryDate: values[2],
			CVV:        values[3],
		}

	case models.CategoryIdentity:
		if values[0] == "" {
			return fmt.Errorf("full name is required")
		}
		m.createReq.Data.Identity = &models.IdentityData{
			FullName:    values[0],
			Email:       values[1],
			Phone:       values[2],
			Address:     values[3],
			DateOfBirth: values[4],
		}
	}

	return nil
}

func (m *appModel) startNotesStage() {
	area := textarea.New()
	area.Placeholder = "Notes (optional)"
	area.SetWidth(54)
	area.SetHeight(4)
	area.Focus()

	m.notesArea = area
	m.createStage = createStageNotes
}

func (m appModel) updateCreateNotes(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetCreateFlow()
			m.screen = screenList
			return m, nil
		case "ctrl+s":
			if m.saving {
				return m, nil
			}

			req := m.createReq
			if notes := strings.TrimSpace(m.notesArea.Value()); notes != "" {
				req.Data.Notes = notes
			}
			if req.Category == models.CategoryOther && req.Data.Notes == "" {
				m.errMsg = "Notes are required for this category"
				return m, nil
			}

			m.errMsg = ""
			m.saving = true
			return m, m.cmdCreate(req)
		}
	}

	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(msg)
	return m, cmd
}
