// Package adapter provides the client-side transport to the vault server.
//
// The adapter speaks the server's REST API and converts HTTP failures into
// sentinel errors the terminal client can branch on. Decrypted payloads pass
// through the adapter but are never cached by it.
package adapter

import (
	"context"

	"github.com/mkosarev/keepsake/models"
)

// ServerAdapter is the client's view of the vault server.
//
// All methods require a bearer token to be set via [ServerAdapter.SetToken];
// the server rejects unauthenticated calls.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the currently held bearer token.
	Token() string

	// PinStatus reports whether the owner has a PIN configured.
	PinStatus(ctx context.Context) (bool, error)

	// SetPin creates or replaces the owner's PIN.
	SetPin(ctx context.Context, pin string) error

	// VerifyPin checks the candidate PIN against the stored one. A wrong
	// PIN yields (false, nil); errors are transport or lockout failures.
	VerifyPin(ctx context.Context, pin string) (bool, error)

	// ListItems returns all vault items of the owner, ciphertext included,
	// plaintext never.
	ListItems(ctx context.Context) ([]models.VaultItem, error)

	// CreateItem stores a new vault item and returns the persisted record.
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.VaultItem, error)

	// UpdateItem applies a partial update to the item with the given id.
	UpdateItem(ctx context.Context, id string, req models.UpdateItemRequest) (models.VaultItem, error)

	// DeleteItem removes the item with the given id. Deleting an absent
	// item is not an error.
	DeleteItem(ctx context.Context, id string) error

	// DecryptItem asks the server to decrypt one item and returns its
	// plaintext payload.
	DecryptItem(ctx context.Context, id string) (models.VaultData, error)
}
