package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkosarev/keepsake/internal/crypto"
	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/store"
	"github.com/mkosarev/keepsake/internal/validators"
	"github.com/mkosarev/keepsake/models"
)

const (
	testSecret  = "0123456789abcdef0123456789abcdef"
	testPepper  = "test-pepper"
	testOwnerID = "3f0e8a52-1f6a-4c2e-9d35-6f1f2a9b7c01"
	testItemID  = "0191d2b4-6f3e-7c52-8a1e-4b9c0d2e5f10"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.VaultItemRepository
// ─────────────────────────────────────────────

type mockVaultItemRepository struct {
	listFn   func(ctx context.Context, ownerID string) ([]models.VaultItem, error)
	getFn    func(ctx context.Context, ownerID, id string) (models.VaultItem, error)
	createFn func(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	updateFn func(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error)
	deleteFn func(ctx context.Context, ownerID, id string) error
}

func (m *mockVaultItemRepository) List(ctx context.Context, ownerID string) ([]models.VaultItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockVaultItemRepository) Get(ctx context.Context, ownerID, id string) (models.VaultItem, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ownerID, id)
	}
	return models.VaultItem{}, nil
}

func (m *mockVaultItemRepository) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return item, nil
}

func (m *mockVaultItemRepository) Update(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.VaultItem{}, nil
}

func (m *mockVaultItemRepository) Delete(ctx context.Context, ownerID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestEnvelope(t *testing.T) crypto.EnvelopeService {
	t.Helper()
	envelope, err := crypto.NewEnvelopeService(testSecret, testPepper)
	require.NoError(t, err)
	return envelope
}

func newTestVaultService(t *testing.T, repo *mockVaultItemRepository) VaultService {
	t.Helper()
	return NewVaultService(repo, newTestEnvelope(t), logger.Nop())
}

func passwordCreateRequest() models.CreateItemRequest {
	return models.CreateItemRequest{
		Label:    "gmail",
		Category: models.CategoryPassword,
		Data: models.VaultData{
			Password: &models.PasswordData{
				Username: "user@gmail.com",
				Password: "s3cret",
				URL:      "https://mail.google.com",
			},
		},
	}
}

// ─────────────────────────────────────────────
// ListItems
// ─────────────────────────────────────────────

func TestVaultService_ListItems_Success(t *testing.T) {
	repo := &mockVaultItemRepository{
		listFn: func(ctx context.Context, ownerID string) ([]models.VaultItem, error) {
			assert.Equal(t, testOwnerID, ownerID)
			return []models.VaultItem{{ID: testItemID, OwnerID: ownerID}}, nil
		},
	}
	svc := newTestVaultService(t, repo)

	items, err := svc.ListItems(context.Background(), testOwnerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestVaultService_ListItems_EmptyOwner(t *testing.T) {
	svc := newTestVaultService(t, &mockVaultItemRepository{})

	_, err := svc.ListItems(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// CreateItem
// ─────────────────────────────────────────────

func TestVaultService_CreateItem_EncryptsBeforePersisting(t *testing.T) {
	var persisted models.VaultItem
	repo := &mockVaultItemRepository{
		createFn: func(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
			persisted = item
			return item, nil
		},
	}
	svc := newTestVaultService(t, repo)
	request := passwordCreateRequest()

	created, err := svc.CreateItem(context.Background(), testOwnerID, request)
	require.NoError(t, err)

	assert.NotEmpty(t, persisted.ID)
	assert.Equal(t, testOwnerID, persisted.OwnerID)
	assert.Equal(t, request.Label, persisted.Label)
	assert.NotEmpty(t, persisted.Ciphertext)
	assert.NotContains(t, string(persisted.Ciphertext), "s3cret")
	assert.Equal(t, persisted.ID, created.ID)
}

func TestVaultService_CreateItem_CiphertextRoundTrips(t *testing.T) {
	repo := &mockVaultItemRepository{}
	envelope := newTestEnvelope(t)
	svc := NewVaultService(repo, envelope, logger.Nop())

	created, err := svc.CreateItem(context.Background(), testOwnerID, passwordCreateRequest())
	require.NoError(t, err)

	var data models.VaultData
	require.NoError(t, envelope.Decrypt(created.Ciphertext, &data))
	require.NotNil(t, data.Password)
	assert.Equal(t, "s3cret", data.Password.Password)
}

func TestVaultService_CreateItem_ValidationFailure(t *testing.T) {
	repo := &mockVaultItemRepository{
		createFn: func(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
			t.Fatal("repository must not be called for an invalid request")
			return models.VaultItem{}, nil
		},
	}
	svc := newTestVaultService(t, repo)

	request := passwordCreateRequest()
	request.Label = ""

	_, err := svc.CreateItem(context.Background(), testOwnerID, request)
	require.ErrorIs(t, err, validators.ErrEmptyLabel)
}

func TestVaultService_CreateItem_StorageFailure(t *testing.T) {
	repo := &mockVaultItemRepository{
		createFn: func(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
			return models.VaultItem{}, errStorage
		},
	}
	svc := newTestVaultService(t, repo)

	_, err := svc.CreateItem(context.Background(), testOwnerID, passwordCreateRequest())
	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// DecryptItem
// ─────────────────────────────────────────────

func TestVaultService_DecryptItem_Success(t *testing.T) {
	envelope := newTestEnvelope(t)
	ciphertext, err := envelope.Encrypt(models.VaultData{
		Note: &models.NoteData{Note: "wifi: hunter2"},
	})
	require.NoError(t, err)

	repo := &mockVaultItemRepository{
		getFn: func(ctx context.Context, ownerID, id string) (models.VaultItem, error) {
			assert.Equal(t, testOwnerID, ownerID)
			assert.Equal(t, testItemID, id)
			return models.VaultItem{ID: id, OwnerID: ownerID, Ciphertext: ciphertext}, nil
		},
	}
	svc := NewVaultService(repo, envelope, logger.Nop())

	data, err := svc.DecryptItem(context.Background(), testOwnerID, testItemID)
	require.NoError(t, err)
	require.NotNil(t, data.Note)
	assert.Equal(t, "wifi: hunter2", data.Note.Note)
}

func TestVaultService_DecryptItem_NotFound(t *testing.T) {
	repo := &mockVaultItemRepository{
		getFn: func(ctx context.Context, ownerID, id string) (models.VaultItem, error) {
			return models.VaultItem{}, store.ErrItemNotFound
		},
	}
	svc := newTestVaultService(t, repo)

	_, err := svc.DecryptItem(context.Background(), testOwnerID, testItemID)
	require.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestVaultService_DecryptItem_WrongKey(t *testing.T) {
	otherEnvelope, err := crypto.NewEnvelopeService("ffffffffffffffffffffffffffffffff", testPepper)
	require.NoError(t, err)
	foreign, err := otherEnvelope.Encrypt(models.VaultData{Note: &models.NoteData{Note: "x"}})
	require.NoError(t, err)

	repo := &mockVaultItemRepository{
		getFn: func(ctx context.Context, ownerID, id string) (models.VaultItem, error) {
			return models.VaultItem{ID: id, OwnerID: ownerID, Ciphertext: foreign}, nil
		},
	}
	svc := newTestVaultService(t, repo)

	_, err = svc.DecryptItem(context.Background(), testOwnerID, testItemID)
	require.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

// ─────────────────────────────────────────────
// UpdateItem
// ─────────────────────────────────────────────

func TestVaultService_UpdateItem_LabelOnlyKeepsCiphertext(t *testing.T) {
	label := "gmail-work"
	repo := &mockVaultItemRepository{
		updateFn: func(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
			assert.Equal(t, testItemID, update.ID)
			assert.Equal(t, testOwnerID, update.OwnerID)
			require.NotNil(t, update.Label)
			assert.Equal(t, label, *update.Label)
			assert.Nil(t, update.Ciphertext)
			return models.VaultItem{ID: update.ID, Label: label}, nil
		},
	}
	svc := newTestVaultService(t, repo)

	updated, err := svc.UpdateItem(context.Background(), testOwnerID, testItemID, models.UpdateItemRequest{Label: &label})
	require.NoError(t, err)
	assert.Equal(t, label, updated.Label)
}

func TestVaultService_UpdateItem_ReencryptsPayload(t *testing.T) {
	envelope := newTestEnvelope(t)
	category := models.CategoryNote
	data := models.VaultData{Note: &models.NoteData{Note: "rotated"}}

	repo := &mockVaultItemRepository{
		updateFn: func(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
			require.NotNil(t, update.Ciphertext)

			var decrypted models.VaultData
			require.NoError(t, envelope.Decrypt(*update.Ciphertext, &decrypted))
			require.NotNil(t, decrypted.Note)
			assert.Equal(t, "rotated", decrypted.Note.Note)

			return models.VaultItem{ID: update.ID}, nil
		},
	}
	svc := NewVaultService(repo, envelope, logger.Nop())

	_, err := svc.UpdateItem(context.Background(), testOwnerID, testItemID, models.UpdateItemRequest{
		Category: &category,
		Data:     &data,
	})
	require.NoError(t, err)
}

func TestVaultService_UpdateItem_NoFields(t *testing.T) {
	svc := newTestVaultService(t, &mockVaultItemRepository{})

	_, err := svc.UpdateItem(context.Background(), testOwnerID, testItemID, models.UpdateItemRequest{})
	require.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
}

func TestVaultService_UpdateItem_NotFound(t *testing.T) {
	label := "gmail-work"
	repo := &mockVaultItemRepository{
		updateFn: func(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
			return models.VaultItem{}, store.ErrItemNotFound
		},
	}
	svc := newTestVaultService(t, repo)

	_, err := svc.UpdateItem(context.Background(), testOwnerID, testItemID, models.UpdateItemRequest{Label: &label})
	require.ErrorIs(t, err, store.ErrItemNotFound)
}

// ─────────────────────────────────────────────
// DeleteItem
// ─────────────────────────────────────────────

func TestVaultService_DeleteItem_Success(t *testing.T) {
	called := false
	repo := &mockVaultItemRepository{
		deleteFn: func(ctx context.Context, ownerID, id string) error {
			called = true
			assert.Equal(t, testOwnerID, ownerID)
			assert.Equal(t, testItemID, id)
			return nil
		},
	}
	svc := newTestVaultService(t, repo)

	require.NoError(t, svc.DeleteItem(context.Background(), testOwnerID, testItemID))
	assert.True(t, called)
}

func TestVaultService_DeleteItem_EmptyID(t *testing.T) {
	svc := newTestVaultService(t, &mockVaultItemRepository{})

	err := svc.DeleteItem(context.Background(), testOwnerID, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
