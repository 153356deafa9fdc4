package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/models"
)

// pinRepository is the PostgreSQL-backed implementation of [PinRepository].
// It stores one row per user in the "vault_pins" table and keeps an advisory
// in-process fallback cache of hashes for the read path.
type pinRepository struct {
	*DB
	fallback *pinFallbackCache
	logger   *logger.Logger
}

// NewPinRepository constructs a [PinRepository] backed by the provided
// database connection and logger.
func NewPinRepository(db *DB, logger *logger.Logger) PinRepository {
	return &pinRepository{
		DB:       db,
		fallback: newPinFallbackCache(),
		logger:   logger,
	}
}

// Get loads the owner's PIN record.
//
// Returns [ErrPinNotFound] when the owner never set a PIN. When the query
// fails with a transient storage error, the fallback cache is consulted: a
// hit serves the cached hash (logged as degraded mode), a miss propagates
// the original error. An absent row never falls back, and neither does a
// non-retryable database error: "no pin set" and constraint-class failures
// are authoritative answers only the database can give.
func (p *pinRepository) Get(ctx context.Context, ownerID string) (models.PinRecord, error) {
	log := logger.FromContext(ctx)

	var record models.PinRecord
	scanErr := p.DB.QueryRowContext(ctx, getPinRecord, ownerID).Scan(
		&record.OwnerID,
		&record.PinHash,
		&record.UpdatedAt,
	)

	if scanErr == nil {
		return record, nil
	}

	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.PinRecord{}, ErrPinNotFound
	}

	if hash, ok := p.fallback.get(ownerID); ok && p.DB.transient(scanErr) {
		log.Warn().
			Str("func", "pinRepository.Get").
			Str("user_id", ownerID).
			AnErr("storage_error", scanErr).
			Msg("pin store unavailable, serving hash from in-process fallback cache")
		return models.PinRecord{OwnerID: ownerID, PinHash: hash, UpdatedAt: time.Time{}}, nil
	}

	log.Err(scanErr).
		Str("func", "pinRepository.Get").
		Str("user_id", ownerID).
		Msg("failed to get pin record")
	return models.PinRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
}

// Upsert creates or overwrites the owner's PIN record.
//
// The fallback cache is updated only after the database write succeeds: a
// persistence failure is surfaced to the caller, never masked by the cache.
func (p *pinRepository) Upsert(ctx context.Context, record models.PinRecord) error {
	log := logger.FromContext(ctx)

	_, execErr := p.DB.ExecContext(ctx, upsertPinRecord, record.OwnerID, record.PinHash)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "pinRepository.Upsert").
			Str("user_id", record.OwnerID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to upsert pin record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	p.fallback.put(record.OwnerID, record.PinHash)

	return nil
}
