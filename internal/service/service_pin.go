package service

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"

	"github.com/mkosarev/keepsake/internal/config"
	"github.com/mkosarev/keepsake/internal/crypto"
	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/store"
	"github.com/mkosarev/keepsake/internal/validators"
	"github.com/mkosarev/keepsake/models"
)

// pinService is the concrete implementation of PinService. The raw PIN never
// leaves a call frame: Set and Verify hash it immediately via the envelope's
// peppered hash and only the hash is stored, compared, or logged about.
type pinService struct {
	pinRepository store.PinRepository
	envelope      crypto.EnvelopeService
	validator     validators.Validator
	limiter       *attemptLimiter

	logger *logger.Logger
}

func NewPinService(pinRepository store.PinRepository, envelope crypto.EnvelopeService, cfg config.App, logger *logger.Logger) PinService {
	return &pinService{
		pinRepository: pinRepository,
		envelope:      envelope,
		validator:     validators.NewVaultValidator(),
		limiter:       newAttemptLimiter(cfg.PinMaxAttempts, cfg.PinLockout),
		logger:        logger,
	}
}

// Status reports whether the owner has a PIN configured. An absent record is
// an ordinary false, not an error.
func (p *pinService) Status(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, ErrInvalidDataProvided
	}

	_, err := p.pinRepository.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrPinNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// Set validates the PIN (digits only, at least four), hashes it with the
// server pepper, and persists the record, overwriting any previous PIN.
// A storage failure is surfaced to the caller; it is never converted into a
// cached success.
func (p *pinService) Set(ctx context.Context, ownerID, pin string) error {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return ErrInvalidDataProvided
	}

	if err := p.validator.Validate(ctx, models.PinRequest{Pin: pin}, validators.FieldPin); err != nil {
		return err
	}

	record := models.PinRecord{
		OwnerID: ownerID,
		PinHash: p.envelope.HashPin(pin),
	}

	if err := p.pinRepository.Upsert(ctx, record); err != nil {
		log.Err(err).
			Str("func", "pinService.Set").
			Str("user_id", ownerID).
			Msg("failed to persist pin record")
		return fmt.Errorf("failed to persist pin record: %w", err)
	}

	p.limiter.reset(ownerID)

	return nil
}

// Verify compares the supplied PIN against the stored hash in constant time.
//
// A mismatch is a valid=false result, not an error. Consecutive mismatches
// beyond the configured maximum lock the owner out for the configured
// duration, during which Verify returns ErrTooManyAttempts without touching
// the store.
func (p *pinService) Verify(ctx context.Context, ownerID, pin string) (bool, error) {
	if ownerID == "" {
		return false, ErrInvalidDataProvided
	}

	if err := p.validator.Validate(ctx, models.PinRequest{Pin: pin}, validators.FieldPinPresence); err != nil {
		return false, err
	}

	if !p.limiter.allowed(ownerID) {
		return false, ErrTooManyAttempts
	}

	record, err := p.pinRepository.Get(ctx, ownerID)
	if err != nil {
		return false, err
	}

	valid := hmac.Equal([]byte(record.PinHash), []byte(p.envelope.HashPin(pin)))
	if valid {
		p.limiter.reset(ownerID)
	} else {
		p.limiter.recordFailure(ownerID)
	}

	return valid, nil
}
