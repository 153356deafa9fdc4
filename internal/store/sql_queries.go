package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkosarev/keepsake/models"
)

const (
	vaultItemColumns = `id, user_id, label, category, data_encrypted, created_at, updated_at`

	listVaultItems = `SELECT id, user_id, label, category, data_encrypted, created_at, updated_at
		FROM vault_items
		WHERE user_id = $1
		ORDER BY created_at DESC;`

	getVaultItem = `SELECT id, user_id, label, category, data_encrypted, created_at, updated_at
		FROM vault_items
		WHERE id = $1 AND user_id = $2;`

	insertVaultItem = `INSERT INTO vault_items (
			id,
			user_id,
			label,
			category,
			data_encrypted,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, user_id, label, category, data_encrypted, created_at, updated_at;`

	deleteVaultItem = `DELETE FROM vault_items
		WHERE id = $1 AND user_id = $2;`

	getPinRecord = `SELECT user_id, pin_hash, updated_at
		FROM vault_pins
		WHERE user_id = $1;`

	upsertPinRecord = `INSERT INTO vault_pins (user_id, pin_hash, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET pin_hash = EXCLUDED.pin_hash, updated_at = NOW();`
)

// buildUpdateVaultItemQuery builds the partial UPDATE for a vault item with
// squirrel. Only non-nil fields of update produce SET clauses; updated_at is
// always touched. The WHERE clause filters on both id and user_id so that a
// cross-owner update matches nothing.
//
// Returns [ErrBuildingSQLQuery] when update carries no fields to set.
func buildUpdateVaultItemQuery(update models.VaultItemUpdate) (string, []any, error) {
	builder := sq.Update("vault_items").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()"))

	touched := false
	if update.Label != nil {
		builder = builder.Set("label", *update.Label)
		touched = true
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
		touched = true
	}
	if update.Ciphertext != nil {
		builder = builder.Set("data_encrypted", *update.Ciphertext)
		touched = true
	}

	if !touched {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder = builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.OwnerID}).
		Suffix("RETURNING " + vaultItemColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
