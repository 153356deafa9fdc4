package tui

import (
	"fmt"
	"strings"

	"github.com/mkosarev/keepsake/models"
)

func (m appModel) View() string {
	switch m.screen {
	case screenStarting:
		body := "Checking PIN status..."
		if m.errMsg != "" {
			body = errorStyle.Render("Error: " + m.errMsg)
		}
		return renderPage("KEEPSAKE VAULT", body, "")
	case screenPinSetup:
		return m.viewPinSetup()
	case screenLocked:
		return m.viewLocked()
	case screenList:
		return m.viewList()
	case screenDetail:
		return m.viewDetail()
	case screenCreate:
		return m.viewCreate()
	case screenEdit:
		return m.viewEdit()
	}
	return renderPage("KEEPSAKE VAULT", "", "")
}

func (m appModel) viewPinSetup() string {
	out := "No PIN is set yet. Choose one to protect the vault.\n\n"
	out += "PIN       : [ " + m.pinInputs[0].View() + " ]\n"
	out += "Repeat    : [ " + m.pinInputs[1].View() + " ]\n"
	if m.settingPin {
		out += "\nSaving PIN...\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("SET UP PIN", strings.TrimRight(out, "\n"), "tab: switch field | enter: save")
}

func (m appModel) viewLocked() string {
	out := "The vault is locked.\n\n"
	out += "PIN       : [ " + m.unlockInput.View() + " ]\n"
	if m.verifying {
		out += "\nVerifying...\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(out, "\n"), "enter: unlock")
}

func (m appModel) viewList() string {
	if m.confirmDelete {
		if item, ok := m.current(); ok {
			return m.viewDeleteConfirm(item)
		}
	}

	out := ""
	if m.loading {
		return renderPage("VAULT", "Loading items...", listHotKeys)
	}

	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += m.status + "\n"
	}

	if len(m.items) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "The vault is empty\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "    │ Label                    │ Category        │ Updated\n"
		out += "────┼──────────────────────────┼─────────────────┼────────────────\n"
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-2d│ %-24s │ %-15s │ %s\n",
				cursor,
				i+1,
				fitText(item.Label, 24),
				fitText(categoryLabel(item.Category), 15),
				item.UpdatedAt.Format("2006-01-02 15:04"),
			)
		}
	}

	return renderPage("VAULT", strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "n: new | enter: open | e: edit | ctrl+d: delete | r: reload | L: lock | q: quit"

func (m appModel) viewDeleteConfirm(item models.VaultItem) string {
	content := "Delete \"" + item.Label + "\"?\n\n"
	content += "y yes    N no"
	return overlayBoxStyle.Render(content)
}

func (m appModel) viewDetail() string {
	item, ok := m.current()
	if !ok {
		return renderPage("ITEM", "Item not found", "esc: back")
	}

	if m.confirmDelete {
		return m.viewDeleteConfirm(item)
	}

	var b strings.Builder
	b.WriteString("Label     : " + item.Label + "\n")
	b.WriteString("Category  : " + categoryLabel(item.Category) + "\n\n")

	if m.decrypting && m.detailData == nil {
		b.WriteString("Decrypting...\n")
		return renderPage(detailTitle(item), strings.TrimRight(b.String(), "\n"), "esc: back")
	}
	if m.detailData == nil {
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
		}
		return renderPage(detailTitle(item), strings.TrimRight(b.String(), "\n"), "esc: back")
	}

	m.writeDecryptedFields(&b, item)

	if m.detailData.Notes != "" {
		b.WriteString("\nNotes     : " + m.detailData.Notes + "\n")
	}
	for k, v := range m.detailData.CustomFields {
		b.WriteString(k + " : " + v + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "space: reveal | c: copy | e: edit | ctrl+d: delete | esc: back"
	return renderPage(detailTitle(item), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func detailTitle(item models.VaultItem) string {
	return strings.ToUpper(categoryLabel(item.Category)) + ": " + item.Label
}

func (m appModel) writeDecryptedFields(b *strings.Builder, item models.VaultItem) {
	switch item.Category {
	case models.CategoryPassword:
		if p := m.detailData.Password; p != nil {
			b.WriteString("Username  : " + p.Username + "\n")
			b.WriteString("Password  : " + maskSecret(p.Password, m.revealSecret) + "\n")
			if p.URL != "" {
				b.WriteString("URL       : " + p.URL + "\n")
			}
		}
	case models.CategoryCard:
		if c := m.detailData.Card; c != nil {
			b.WriteString("Number    : " + maskSecret(c.Number, m.revealSecret) + "\n")
			b.WriteString("Holder    : " + orDash(c.HolderName) + "\n")
			b.WriteString("Expiry    : " + orDash(c.ExpiryDate) + "\n")
			b.WriteString("CVV       : " + maskSecret(c.CVV, m.revealSecret) + "\n")
		}
	case models.CategoryNote:
		if n := m.detailData.Note; n != nil {
			b.WriteString(n.Note + "\n")
		}
	case models.CategoryIdentity:
		if id := m.detailData.Identity; id != nil {
			b.WriteString("Full name : " + id.FullName + "\n")
			b.WriteString("Email     : " + orDash(id.Email) + "\n")
			b.WriteString("Phone     : " + orDash(id.Phone) + "\n")
			b.WriteString("Address   : " + orDash(id.Address) + "\n")
			b.WriteString("Birthday  : " + orDash(id.DateOfBirth) + "\n")
		}
	}
}

func (m appModel) viewCreate() string {
	switch m.createStage {
	case createStageCategory:
		out := "Choose a category:\n\n"
		for i, c := range createCategories {
			cursor := " "
			if i == m.categoryIdx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, categoryLabel(c))
		}
		return renderPage("NEW ITEM: CATEGORY", strings.TrimRight(out, "\n"), "1-5/enter: select | esc: cancel")

	case createStageLabel:
		out := "Label     : [ " + m.labelInput.View() + " ]\n"
		if m.errMsg != "" {
			out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
		}
		return renderPage("NEW ITEM: LABEL", strings.TrimRight(out, "\n"), "enter: next | esc: cancel")

	case createStageData:
		return m.viewCreateData()

	case createStageNotes:
		out := m.notesArea.View()
		if m.errMsg != "" {
			out += "\n" + errorStyle.Render("Error: "+m.errMsg)
		}
		if m.saving {
			out += "\nSaving..."
		}
		return renderPage("NEW ITEM: NOTES", out, "ctrl+s: save | esc: cancel")
	}

	return renderPage("NEW ITEM", "", "esc: cancel")
}

func (m appModel) viewCreateData() string {
	head := "Label     : " + m.createReq.Label + "\n"
	head += "Category  : " + categoryLabel(m.createReq.Category) + "\n\n"

	var out string
	switch m.createReq.Category {
	case models.CategoryPassword:
		out = head
		out += "Username  : [ " + m.dataInputs[0].View() + " ]\n"
		out += "Password  : [ " + m.dataInputs[1].View() + " ]\n"
		out += "URL       : [ " + m.dataInputs[2].View() + " ]\n"
	case models.CategoryCard:
		out = head
		out += "Number    : [ " + m.dataInputs[0].View() + " ]\n"
		out += "Holder    : [ " + m.dataInputs[1].View() + " ]\n"
		out += "Expiry    : [ " + m.dataInputs[2].View() + " ]\n"
		out += "CVV       : [ " + m.dataInputs[3].View() + " ]\n"
	case models.CategoryNote:
		out = head + m.noteArea.View() + "\n"
		if m.errMsg != "" {
			out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
		}
		return renderPage("NEW ITEM: NOTE", strings.TrimRight(out, "\n"), "ctrl+s: next | esc: cancel")
	case models.CategoryIdentity:
		out = head
		out += "Full name : [ " + m.dataInputs[0].View() + " ]\n"
		out += "Email     : [ " + m.dataInputs[1].View() + " ]\n"
		out += "Phone     : [ " + m.dataInputs[2].View() + " ]\n"
		out += "Address   : [ " + m.dataInputs[3].View() + " ]\n"
		out += "Birthday  : [ " + m.dataInputs[4].View() + " ]\n"
	default:
		return renderPage("NEW ITEM", "Unknown category", "esc: cancel")
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("NEW ITEM: DETAILS", strings.TrimRight(out, "\n"), "tab: next field | enter: next | esc: cancel")
}

func (m appModel) viewEdit() string {
	out := "Label     : [ " + m.editInput.View() + " ]\n"
	if m.submitting {
		out += "\nSaving...\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("EDIT ITEM", strings.TrimRight(out, "\n"), "enter: save | esc: back")
}
