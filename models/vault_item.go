package models

import "time"

// VaultItem represents a single entry in a user's vault.
// It is the primary persistence model for all sensitive user data.
// The confidential payload is stored encrypted and opaque to the database;
// only Label and Category are readable server-side.
type VaultItem struct {
	// ID is the unique identifier of the record, a UUID string
	// generated at creation time. Immutable.
	ID string `json:"id"`

	// OwnerID identifies the user that owns this entry. Every read and
	// write against the vault is scoped by this field.
	OwnerID string `json:"owner_id"`

	// Label is the human-readable display name of the item.
	// Required, non-empty.
	Label string `json:"label"`

	// Category defines how the decrypted payload must be interpreted.
	Category Category `json:"category"`

	// Ciphertext holds the encrypted payload. The database and every
	// component except the encryption envelope treat it as an opaque string.
	Ciphertext Ciphertext `json:"data_encrypted"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// VaultItemUpdate describes a partial update of one vault item.
// Nil fields are left unchanged. ID and OwnerID locate the target row;
// an update never moves an item between owners.
type VaultItemUpdate struct {
	ID         string
	OwnerID    string
	Label      *string
	Category   *Category
	Ciphertext *Ciphertext
}

// Ciphertext is a string alias representing encrypted content.
// The actual structure and meaning of the data are unknown to the database.
type Ciphertext string

// TableName returns the name of the database table
// associated with the VaultItem model.
func (v *VaultItem) TableName() string {
	return "vault_items"
}
