package store

import (
	"context"

	"github.com/mkosarev/keepsake/models"
)

// VaultItemRepository is the storage adapter for vault items. Every method
// is scoped by the owning user: no operation can read or modify another
// user's rows, and a cross-owner id behaves exactly like a missing one.
//
// The repository never sees plaintext. Ciphertext is produced and consumed
// by the encryption envelope at the service layer.
type VaultItemRepository interface {
	// List returns all items owned by ownerID ordered by created_at
	// descending. An owner with no items gets an empty slice, not an error.
	List(ctx context.Context, ownerID string) ([]models.VaultItem, error)

	// Get returns the single item matching (id, ownerID), or
	// [ErrItemNotFound].
	Get(ctx context.Context, ownerID, id string) (models.VaultItem, error)

	// Create persists a new item. ID must be pre-generated by the caller;
	// CreatedAt and UpdatedAt are set by the store. Returns the stored row.
	Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// Update applies a partial update and returns the stored row.
	// Returns [ErrItemNotFound] when (id, ownerID) matches nothing.
	Update(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error)

	// Delete removes the item matching (id, ownerID). Deleting an absent
	// id is a no-op success: delete is idempotent at the storage layer.
	Delete(ctx context.Context, ownerID, id string) error
}

// PinRepository is the storage adapter for PIN records, one per user.
type PinRepository interface {
	// Get returns the owner's PIN record, or [ErrPinNotFound].
	Get(ctx context.Context, ownerID string) (models.PinRecord, error)

	// Upsert creates the owner's PIN record or overwrites the existing
	// hash. No history is kept.
	Upsert(ctx context.Context, record models.PinRecord) error
}
