package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/models"
)

// vaultItemRepository is the PostgreSQL-backed implementation of
// [VaultItemRepository]. It executes all vault-item CRUD operations directly
// against the "vault_items" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, item_id, etc.). The ciphertext itself is never
// logged.
type vaultItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultItemRepository constructs a [VaultItemRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	return &vaultItemRepository{
		DB:     db,
		logger: logger,
	}
}

// List retrieves every vault item owned by the given user, newest first.
//
// Returns an empty slice when no records are found. The ciphertext column is
// included as stored; decryption is the service layer's concern.
func (v *vaultItemRepository) List(ctx context.Context, ownerID string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := v.DB.QueryContext(ctx, listVaultItems, ownerID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "vaultItemRepository.List").
			Str("user_id", ownerID).
			Msg("failed to execute query for listing vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0, 20)

	for rows.Next() {
		var item models.VaultItem

		scanErr := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Label,
			&item.Category,
			&item.Ciphertext,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultItemRepository.List").
				Str("user_id", ownerID).
				Msg("failed to scan vault item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vaultItemRepository.List").
			Str("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Get retrieves the single vault item matching (id, ownerID).
//
// Returns [ErrItemNotFound] when no row matches - whether the id does not
// exist or belongs to a different user is deliberately indistinguishable.
func (v *vaultItemRepository) Get(ctx context.Context, ownerID, id string) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	var item models.VaultItem
	scanErr := v.DB.QueryRowContext(ctx, getVaultItem, id, ownerID).Scan(
		&item.ID,
		&item.OwnerID,
		&item.Label,
		&item.Category,
		&item.Ciphertext,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.VaultItem{}, ErrItemNotFound
		}

		log.Err(scanErr).
			Str("func", "vaultItemRepository.Get").
			Str("user_id", ownerID).
			Str("item_id", id).
			Msg("failed to get vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return item, nil
}

// Create persists a new vault item and returns the stored row including the
// timestamps assigned by the database.
func (v *vaultItemRepository) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	var created models.VaultItem
	scanErr := v.DB.QueryRowContext(ctx, insertVaultItem,
		item.ID,
		item.OwnerID,
		item.Label,
		item.Category,
		item.Ciphertext,
	).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Label,
		&created.Category,
		&created.Ciphertext,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.VaultItem{}, ErrItemNotSaved
		}

		log.Err(scanErr).
			Str("func", "vaultItemRepository.Create").
			Str("user_id", item.OwnerID).
			Str("pg_code", postgresError(scanErr)).
			Msg("failed to insert vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return created, nil
}

// Update applies a partial update built by [buildUpdateVaultItemQuery] and
// returns the stored row.
//
// Returns [ErrItemNotFound] when (id, ownerID) matches nothing and
// [ErrBuildingSQLQuery] when the update carries no fields.
func (v *vaultItemRepository) Update(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVaultItemQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "vaultItemRepository.Update").
			Str("user_id", update.OwnerID).
			Str("item_id", update.ID).
			Msg("failed to build update query")
		return models.VaultItem{}, err
	}

	var updated models.VaultItem
	scanErr := v.DB.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Label,
		&updated.Category,
		&updated.Ciphertext,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.VaultItem{}, ErrItemNotFound
		}

		log.Err(scanErr).
			Str("func", "vaultItemRepository.Update").
			Str("user_id", update.OwnerID).
			Str("item_id", update.ID).
			Msg("failed to update vault item")
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return updated, nil
}

// Delete removes the item matching (id, ownerID). Zero affected rows is a
// success: delete is idempotent, and a cross-owner id behaves identically to
// an absent one.
func (v *vaultItemRepository) Delete(ctx context.Context, ownerID, id string) error {
	log := logger.FromContext(ctx)

	_, execErr := v.DB.ExecContext(ctx, deleteVaultItem, id, ownerID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "vaultItemRepository.Delete").
			Str("user_id", ownerID).
			Str("item_id", id).
			Msg("failed to delete vault item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}
