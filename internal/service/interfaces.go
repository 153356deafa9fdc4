package service

import (
	"context"

	"github.com/mkosarev/keepsake/models"
)

// VaultService is the business layer for vault items. All operations are
// scoped by the owner extracted from the caller's token; plaintext exists
// only inside Create, Update, and DecryptOne call frames.
type VaultService interface {
	// ListItems returns the owner's items, newest first, ciphertext as
	// stored. Plaintext is never part of a listing.
	ListItems(ctx context.Context, ownerID string) ([]models.VaultItem, error)

	// CreateItem validates the request, encrypts its payload, and persists
	// a new item with a generated id.
	CreateItem(ctx context.Context, ownerID string, request models.CreateItemRequest) (models.VaultItem, error)

	// DecryptItem loads the owner's item and decrypts its payload. The
	// plaintext is returned transiently and never persisted.
	DecryptItem(ctx context.Context, ownerID, id string) (models.VaultData, error)

	// UpdateItem applies a partial update, re-encrypting the payload when
	// one is provided.
	UpdateItem(ctx context.Context, ownerID, id string, request models.UpdateItemRequest) (models.VaultItem, error)

	// DeleteItem removes the owner's item. Deleting an absent id succeeds.
	DeleteItem(ctx context.Context, ownerID, id string) error
}

// PinService is the business layer for the vault PIN gate.
type PinService interface {
	// Status reports whether the owner has a PIN configured.
	Status(ctx context.Context, ownerID string) (bool, error)

	// Set hashes and persists the owner's PIN, overwriting any previous
	// one. No history is kept.
	Set(ctx context.Context, ownerID, pin string) error

	// Verify compares the supplied PIN against the stored hash in constant
	// time. Returns ErrTooManyAttempts while the owner is locked out and
	// store.ErrPinNotFound when no PIN was ever set.
	Verify(ctx context.Context, ownerID, pin string) (bool, error)
}

// AuthService validates caller identity. Tokens are issued by an external
// identity provider; this service only verifies them.
type AuthService interface {
	// ParseToken verifies the signature and issuer of a raw JWT string and
	// returns the decoded token model.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
