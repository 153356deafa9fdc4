package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/models"
)

const (
	testOwnerID = "3f0e8a52-1f6a-4c2e-9d35-6f1f2a9b7c01"
	testItemID  = "0191d2b4-6f3e-7c52-8a1e-4b9c0d2e5f10"
)

func newTestVaultItemRepo(t *testing.T) (*vaultItemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &vaultItemRepository{
		DB: &DB{
			DB:                 db,
			logger:             l,
			errorClassificator: NewPostgresErrorClassifier(),
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func vaultItemRows(items ...models.VaultItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "label", "category", "data_encrypted", "created_at", "updated_at"})
	for _, item := range items {
		rows.AddRow(item.ID, item.OwnerID, item.Label, string(item.Category), string(item.Ciphertext), item.CreatedAt, item.UpdatedAt)
	}
	return rows
}

func TestVaultItemList_Success(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	now := time.Now()
	newer := models.VaultItem{
		ID:         testItemID,
		OwnerID:    testOwnerID,
		Label:      "github",
		Category:   models.CategoryPassword,
		Ciphertext: "b64blob-2",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	older := models.VaultItem{
		ID:         "0191d2b4-6f3e-7c52-8a1e-4b9c0d2e5f11",
		OwnerID:    testOwnerID,
		Label:      "visa",
		Category:   models.CategoryCard,
		Ciphertext: "b64blob-1",
		CreatedAt:  now.Add(-time.Hour),
		UpdatedAt:  now.Add(-time.Hour),
	}

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs(testOwnerID).
		WillReturnRows(vaultItemRows(newer, older))

	items, err := repo.List(context.Background(), testOwnerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Label != "github" || items[1].Label != "visa" {
		t.Errorf("expected order [github visa], got [%s %s]", items[0].Label, items[1].Label)
	}
}

func TestVaultItemList_Empty(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs(testOwnerID).
		WillReturnRows(vaultItemRows())

	items, err := repo.List(context.Background(), testOwnerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
}

func TestVaultItemList_QueryError(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs(testOwnerID).
		WillReturnError(errors.New("db network error"))

	_, err := repo.List(context.Background(), testOwnerID)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestVaultItemList_ScanError(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(testItemID) // wrong shape

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs(testOwnerID).
		WillReturnRows(rows)

	_, err := repo.List(context.Background(), testOwnerID)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestVaultItemGet_Success(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	now := time.Now()
	item := models.VaultItem{
		ID:         testItemID,
		OwnerID:    testOwnerID,
		Label:      "github",
		Category:   models.CategoryPassword,
		Ciphertext: "b64blob",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs(testItemID, testOwnerID).
		WillReturnRows(vaultItemRows(item))

	found, err := repo.Get(context.Background(), testOwnerID, testItemID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != testItemID {
		t.Errorf("expected id %s, got %s", testItemID, found.ID)
	}
	if found.Ciphertext != "b64blob" {
		t.Errorf("expected ciphertext to round-trip, got %q", found.Ciphertext)
	}
}

func TestVaultItemGet_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs(testItemID, testOwnerID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), testOwnerID, testItemID)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestVaultItemGet_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs(testItemID, testOwnerID).
		WillReturnError(errors.New("db failure"))

	_, err := repo.Get(context.Background(), testOwnerID, testItemID)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestVaultItemCreate_Success(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	now := time.Now()
	item := models.VaultItem{
		ID:         testItemID,
		OwnerID:    testOwnerID,
		Label:      "github",
		Category:   models.CategoryPassword,
		Ciphertext: "b64blob",
	}
	stored := item
	stored.CreatedAt = now
	stored.UpdatedAt = now

	mock.ExpectQuery("INSERT INTO vault_items").
		WithArgs(item.ID, item.OwnerID, item.Label, item.Category, item.Ciphertext).
		WillReturnRows(vaultItemRows(stored))

	created, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected store-assigned timestamps on the returned row")
	}
	if created.Label != item.Label {
		t.Errorf("expected label %s, got %s", item.Label, created.Label)
	}
}

func TestVaultItemCreate_DBError(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO vault_items").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.VaultItem{ID: testItemID, OwnerID: testOwnerID})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestVaultItemUpdate_Success(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	now := time.Now()
	label := "github-work"
	stored := models.VaultItem{
		ID:         testItemID,
		OwnerID:    testOwnerID,
		Label:      label,
		Category:   models.CategoryPassword,
		Ciphertext: "b64blob",
		CreatedAt:  now.Add(-time.Hour),
		UpdatedAt:  now,
	}

	mock.ExpectQuery("UPDATE vault_items").
		WithArgs(label, testItemID, testOwnerID).
		WillReturnRows(vaultItemRows(stored))

	updated, err := repo.Update(context.Background(), models.VaultItemUpdate{
		ID:      testItemID,
		OwnerID: testOwnerID,
		Label:   &label,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Label != label {
		t.Errorf("expected label %s, got %s", label, updated.Label)
	}
}

func TestVaultItemUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	label := "github-work"

	mock.ExpectQuery("UPDATE vault_items").
		WithArgs(label, testItemID, testOwnerID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), models.VaultItemUpdate{
		ID:      testItemID,
		OwnerID: testOwnerID,
		Label:   &label,
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestVaultItemUpdate_NoFields(t *testing.T) {
	repo, _, db := newTestVaultItemRepo(t)
	defer db.Close()

	_, err := repo.Update(context.Background(), models.VaultItemUpdate{
		ID:      testItemID,
		OwnerID: testOwnerID,
	})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestVaultItemDelete_Success(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM vault_items").
		WithArgs(testItemID, testOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), testOwnerID, testItemID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVaultItemDelete_AbsentRowIsSuccess(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM vault_items").
		WithArgs(testItemID, testOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), testOwnerID, testItemID); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}

func TestVaultItemDelete_DBError(t *testing.T) {
	repo, mock, db := newTestVaultItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM vault_items").
		WithArgs(testItemID, testOwnerID).
		WillReturnError(errors.New("db failure"))

	err := repo.Delete(context.Background(), testOwnerID, testItemID)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
