package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkosarev/keepsake/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCreateRequest() models.CreateItemRequest {
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

func ptrLabel(s string) *string                          { return &s }
func ptrCategory(c models.Category) *models.Category     { return &c }
func ptrData(d models.VaultData) *models.VaultData       { return &d }

// ---------------------------------------------------------------------------
// TestNewVaultValidator
// ---------------------------------------------------------------------------

func TestNewVaultValidator(t *testing.T) {
	v := NewVaultValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("CreateItemRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateRequest()))
	})

	t.Run("CreateItemRequest pointer", func(t *testing.T) {
		r := validCreateRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("PinRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.PinRequest{Pin: "1234"}))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validCreateRequest(), "no such field")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateCreateItemRequest
// ---------------------------------------------------------------------------

func TestValidateCreateItemRequest(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateRequest()))
	})

	t.Run("empty label", func(t *testing.T) {
		r := validCreateRequest()
		r.Label = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyLabel)
	})

	t.Run("whitespace label", func(t *testing.T) {
		r := validCreateRequest()
		r.Label = "   "
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyLabel)
	})

	t.Run("unknown category", func(t *testing.T) {
		r := validCreateRequest()
		r.Category = "wallet"
		require.ErrorIs(t, v.Validate(ctx, r, FieldCategory), ErrUnknownCategory)
	})

	t.Run("password category without password section", func(t *testing.T) {
		r := validCreateRequest()
		r.Data = models.VaultData{}
		require.ErrorIs(t, v.Validate(ctx, r), ErrMissingPayload)
	})

	t.Run("password category with card section", func(t *testing.T) {
		r := validCreateRequest()
		r.Data.Card = &models.CardData{Number: "4111111111111111"}
		require.ErrorIs(t, v.Validate(ctx, r), ErrForeignPayload)
	})

	t.Run("field scoping skips unnamed fields", func(t *testing.T) {
		r := validCreateRequest()
		r.Label = ""
		require.NoError(t, v.Validate(ctx, r, FieldCategory, FieldData))
	})
}

// ---------------------------------------------------------------------------
// TestValidateUpdateItemRequest
// ---------------------------------------------------------------------------

func TestValidateUpdateItemRequest(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	t.Run("label only", func(t *testing.T) {
		r := models.UpdateItemRequest{Label: ptrLabel("gmail-work")}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("no fields", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.UpdateItemRequest{}), ErrNoFieldsToUpdate)
	})

	t.Run("empty label", func(t *testing.T) {
		r := models.UpdateItemRequest{Label: ptrLabel("")}
		require.ErrorIs(t, v.Validate(ctx, r), ErrEmptyLabel)
	})

	t.Run("unknown category", func(t *testing.T) {
		r := models.UpdateItemRequest{Category: ptrCategory("wallet")}
		require.ErrorIs(t, v.Validate(ctx, r), ErrUnknownCategory)
	})

	t.Run("data without category", func(t *testing.T) {
		r := models.UpdateItemRequest{
			Data: ptrData(models.VaultData{Note: &models.NoteData{Note: "remember"}}),
		}
		require.ErrorIs(t, v.Validate(ctx, r), ErrCategoryRequired)
	})

	t.Run("data with matching category", func(t *testing.T) {
		r := models.UpdateItemRequest{
			Category: ptrCategory(models.CategoryNote),
			Data:     ptrData(models.VaultData{Note: &models.NoteData{Note: "remember"}}),
		}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("data with mismatched category", func(t *testing.T) {
		r := models.UpdateItemRequest{
			Category: ptrCategory(models.CategoryCard),
			Data:     ptrData(models.VaultData{Note: &models.NoteData{Note: "remember"}}),
		}
		require.ErrorIs(t, v.Validate(ctx, r), ErrForeignPayload)
	})
}

// ---------------------------------------------------------------------------
// TestValidatePinRequest
// ---------------------------------------------------------------------------

func TestValidatePinRequest(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	t.Run("valid four digits", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.PinRequest{Pin: "1234"}))
	})

	t.Run("valid longer pin", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.PinRequest{Pin: "008315"}))
	})

	t.Run("empty", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.PinRequest{}), ErrEmptyPin)
	})

	t.Run("too short", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.PinRequest{Pin: "123"}), ErrPinTooShort)
	})

	t.Run("non-digits", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.PinRequest{Pin: "12a4"}), ErrPinNotDigits)
	})

	t.Run("presence scope accepts short pin", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.PinRequest{Pin: "1"}, FieldPinPresence))
	})

	t.Run("presence scope rejects empty pin", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.PinRequest{}, FieldPinPresence), ErrEmptyPin)
	})
}

// ---------------------------------------------------------------------------
// TestPayloadMatchesCategory
// ---------------------------------------------------------------------------

func TestPayloadMatchesCategory(t *testing.T) {
	t.Run("card requires number", func(t *testing.T) {
		err := PayloadMatchesCategory(models.CategoryCard, models.VaultData{
			Card: &models.CardData{HolderName: "J HOLDER"},
		})
		require.ErrorIs(t, err, ErrMissingPayload)
	})

	t.Run("identity requires full name", func(t *testing.T) {
		err := PayloadMatchesCategory(models.CategoryIdentity, models.VaultData{
			Identity: &models.IdentityData{Email: "j@example.com"},
		})
		require.ErrorIs(t, err, ErrMissingPayload)
	})

	t.Run("other allows free-form only", func(t *testing.T) {
		require.NoError(t, PayloadMatchesCategory(models.CategoryOther, models.VaultData{
			Notes:        "misc",
			CustomFields: map[string]string{"seat": "14A"},
		}))
	})

	t.Run("other rejects typed sections", func(t *testing.T) {
		err := PayloadMatchesCategory(models.CategoryOther, models.VaultData{
			Password: &models.PasswordData{Password: "x"},
		})
		require.ErrorIs(t, err, ErrForeignPayload)
	})

	t.Run("unknown category", func(t *testing.T) {
		err := PayloadMatchesCategory("wallet", models.VaultData{})
		require.ErrorIs(t, err, ErrUnknownCategory)
	})
}
