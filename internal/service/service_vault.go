package service

import (
	"context"
	"fmt"

	"github.com/mkosarev/keepsake/internal/crypto"
	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/store"
	"github.com/mkosarev/keepsake/internal/utils"
	"github.com/mkosarev/keepsake/internal/validators"
	"github.com/mkosarev/keepsake/models"
)

// vaultService is the concrete implementation of VaultService. It glues the
// request validator, the encryption envelope, and the item repository
// together: requests come in as plaintext, rows go out as ciphertext, and
// only DecryptItem ever reverses that.
type vaultService struct {
	itemRepository store.VaultItemRepository
	envelope       crypto.EnvelopeService
	validator      validators.Validator
	uuid           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewVaultService(itemRepository store.VaultItemRepository, envelope crypto.EnvelopeService, logger *logger.Logger) VaultService {
	return &vaultService{
		itemRepository: itemRepository,
		envelope:       envelope,
		validator:      validators.NewVaultValidator(),
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (v *vaultService) ListItems(ctx context.Context, ownerID string) ([]models.VaultItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidDataProvided
	}

	return v.itemRepository.List(ctx, ownerID)
}

func (v *vaultService) CreateItem(ctx context.Context, ownerID string, request models.CreateItemRequest) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return models.VaultItem{}, ErrInvalidDataProvided
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return models.VaultItem{}, err
	}

	ciphertext, err := v.envelope.Encrypt(request.Data)
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.CreateItem").
			Str("user_id", ownerID).
			Msg("failed to encrypt item payload")
		return models.VaultItem{}, fmt.Errorf("failed to encrypt item payload: %w", err)
	}

	item := models.VaultItem{
		ID:         v.uuid.Generate(),
		OwnerID:    ownerID,
		Label:      request.Label,
		Category:   request.Category,
		Ciphertext: ciphertext,
	}

	return v.itemRepository.Create(ctx, item)
}

func (v *vaultService) DecryptItem(ctx context.Context, ownerID, id string) (models.VaultData, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" || id == "" {
		return models.VaultData{}, ErrInvalidDataProvided
	}

	item, err := v.itemRepository.Get(ctx, ownerID, id)
	if err != nil {
		return models.VaultData{}, err
	}

	var data models.VaultData
	if err := v.envelope.Decrypt(item.Ciphertext, &data); err != nil {
		log.Err(err).
			Str("func", "vaultService.DecryptItem").
			Str("user_id", ownerID).
			Str("item_id", id).
			Msg("failed to decrypt item payload")
		return models.VaultData{}, fmt.Errorf("failed to decrypt item payload: %w", err)
	}

	return data, nil
}

func (v *vaultService) UpdateItem(ctx context.Context, ownerID, id string, request models.UpdateItemRequest) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" || id == "" {
		return models.VaultItem{}, ErrInvalidDataProvided
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return models.VaultItem{}, err
	}

	update := models.VaultItemUpdate{
		ID:       id,
		OwnerID:  ownerID,
		Label:    request.Label,
		Category: request.Category,
	}

	if request.Data != nil {
		ciphertext, err := v.envelope.Encrypt(*request.Data)
		if err != nil {
			log.Err(err).
				Str("func", "vaultService.UpdateItem").
				Str("user_id", ownerID).
				Str("item_id", id).
				Msg("failed to encrypt updated item payload")
			return models.VaultItem{}, fmt.Errorf("failed to encrypt item payload: %w", err)
		}
		update.Ciphertext = &ciphertext
	}

	return v.itemRepository.Update(ctx, update)
}

func (v *vaultService) DeleteItem(ctx context.Context, ownerID, id string) error {
	if ownerID == "" || id == "" {
		return ErrInvalidDataProvided
	}

	return v.itemRepository.Delete(ctx, ownerID, id)
}
