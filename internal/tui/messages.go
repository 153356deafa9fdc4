package tui

import "github.com/mkosarev/keepsake/models"

type pinStatusMsg struct {
	hasPin bool
	err    error
}

type pinSetMsg struct {
	err error
}

type pinVerifiedMsg struct {
	valid bool
	err   error
}

type listLoadedMsg struct {
	items []models.VaultItem
	err   error
}

type itemDecryptedMsg struct {
	id   string
	data models.VaultData
	err  error
}

type itemCreatedMsg struct {
	err error
}

type itemUpdatedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}
