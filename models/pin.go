package models

import "time"

// PinRecord stores the secondary access-control PIN for one user.
// At most one record exists per owner; setting a new PIN overwrites the
// previous hash without keeping history.
type PinRecord struct {
	// OwnerID identifies the user this PIN belongs to.
	OwnerID string `json:"-"`

	// PinHash is the one-way hash of the PIN mixed with the server-held
	// pepper. The raw PIN is never persisted or logged.
	PinHash string `json:"-"`

	// UpdatedAt is the timestamp of the last set-PIN call.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the PinRecord model.
func (p PinRecord) TableName() string {
	return "vault_pins"
}
