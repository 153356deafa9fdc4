package service

import (
	"github.com/mkosarev/keepsake/internal/config"
	"github.com/mkosarev/keepsake/internal/crypto"
	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/store"
	"github.com/mkosarev/keepsake/internal/workers"
)

type Services struct {
	AuthService  AuthService
	PinService   PinService
	VaultService VaultService

	// Workers holds the background jobs owned by the service layer,
	// currently the PIN lockout janitor.
	Workers *workers.Workers
}

func NewServices(storages *store.Storages, envelope crypto.EnvelopeService, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	pinSvc := NewPinService(storages.PinRepository, envelope, cfg.App, logger)

	var background []workers.Worker
	if ps, ok := pinSvc.(*pinService); ok {
		background = append(background, newLockoutJanitor(ps.limiter, logger))
	}

	return &Services{
		AuthService:  NewAuthService(cfg.App, logger),
		PinService:   pinSvc,
		VaultService: NewVaultService(storages.VaultItemRepository, envelope, logger),
		Workers:      workers.NewWorkers(background...),
	}
}
