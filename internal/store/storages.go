package store

import (
	"context"

	"github.com/mkosarev/keepsake/internal/config"
	"github.com/mkosarev/keepsake/internal/logger"
)

// Storages groups all repository implementations behind their interfaces so
// the service layer can be wired with a single value.
type Storages struct {
	VaultItemRepository VaultItemRepository
	PinRepository       PinRepository
}

// NewStorages connects to PostgreSQL, runs the embedded migrations, and
// constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		VaultItemRepository: NewVaultItemRepository(db, log),
		PinRepository:       NewPinRepository(db, log),
	}, nil
}
