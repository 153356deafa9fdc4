package validators

import (
	"context"
	"strings"

	"github.com/mkosarev/keepsake/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldLabel targets the human-readable label of a vault item.
	FieldLabel = "label"

	// FieldCategory targets the category tag of a vault item.
	FieldCategory = "category"

	// FieldData targets the plaintext payload of a vault item, checked
	// against its category.
	FieldData = "data"

	// FieldPin targets the PIN value with the full set-PIN rules
	// (digits only, at least four of them).
	FieldPin = "pin"

	// FieldPinPresence targets the PIN value with the verify-PIN rule only
	// (non-empty). Length and character class are not re-checked so that a
	// later tightening of the set rules cannot lock users out of their
	// existing PINs.
	FieldPinPresence = "pin presence"
)

// VaultValidator implements the Validator interface for all vault-related
// request models: CreateItemRequest, UpdateItemRequest, and PinRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type VaultValidator struct {
}

// NewVaultValidator constructs a new VaultValidator
// and returns it as the Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.CreateItemRequest / *models.CreateItemRequest
//   - models.UpdateItemRequest / *models.UpdateItemRequest
//   - models.PinRequest / *models.PinRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateItemRequest:
		return v.validateCreateItemRequest(ctx, value, fields...)
	case *models.CreateItemRequest:
		return v.validateCreateItemRequest(ctx, *value, fields...)

	case models.UpdateItemRequest:
		return v.validateUpdateItemRequest(ctx, value, fields...)
	case *models.UpdateItemRequest:
		return v.validateUpdateItemRequest(ctx, *value, fields...)

	case models.PinRequest:
		return v.validatePinRequest(ctx, value, fields...)
	case *models.PinRequest:
		return v.validatePinRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCreateItemRequest(_ context.Context, request models.CreateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel, FieldCategory, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldLabel:
			if strings.TrimSpace(request.Label) == "" {
				return ErrEmptyLabel
			}
		case FieldCategory:
			if !request.Category.Valid() {
				return ErrUnknownCategory
			}
		case FieldData:
			if err := PayloadMatchesCategory(request.Category, request.Data); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateUpdateItemRequest(_ context.Context, request models.UpdateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel, FieldCategory, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldLabel:
			if request.Label != nil && strings.TrimSpace(*request.Label) == "" {
				return ErrEmptyLabel
			}
		case FieldCategory:
			if request.Category != nil && !request.Category.Valid() {
				return ErrUnknownCategory
			}
		case FieldData:
			if request.Data == nil {
				continue
			}
			// payload is meaningless without its tag
			if request.Category == nil {
				return ErrCategoryRequired
			}
			if err := PayloadMatchesCategory(*request.Category, *request.Data); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	if request.Label == nil && request.Category == nil && request.Data == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *VaultValidator) validatePinRequest(_ context.Context, request models.PinRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPin}
	}

	for _, f := range fields {
		switch f {
		case FieldPin:
			if request.Pin == "" {
				return ErrEmptyPin
			}
			for _, r := range request.Pin {
				if r < '0' || r > '9' {
					return ErrPinNotDigits
				}
			}
			if len(request.Pin) < 4 {
				return ErrPinTooShort
			}
		case FieldPinPresence:
			if request.Pin == "" {
				return ErrEmptyPin
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// PayloadMatchesCategory enforces the tagged-union boundary between a vault
// item's category and its plaintext payload: the category's own section must
// be present with its primary field set, and no other category's section may
// be carried. CategoryOther accepts only the free-form notes and custom
// fields.
func PayloadMatchesCategory(category models.Category, data models.VaultData) error {
	if !category.Valid() {
		return ErrUnknownCategory
	}

	foreign := map[models.Category]bool{
		models.CategoryPassword: data.Password != nil,
		models.CategoryCard:     data.Card != nil,
		models.CategoryNote:     data.Note != nil,
		models.CategoryIdentity: data.Identity != nil,
	}
	delete(foreign, category)
	for _, present := range foreign {
		if present {
			return ErrForeignPayload
		}
	}

	switch category {
	case models.CategoryPassword:
		if data.Password == nil || data.Password.Password == "" {
			return ErrMissingPayload
		}
	case models.CategoryCard:
		if data.Card == nil || data.Card.Number == "" {
			return ErrMissingPayload
		}
	case models.CategoryNote:
		if data.Note == nil || data.Note.Note == "" {
			return ErrMissingPayload
		}
	case models.CategoryIdentity:
		if data.Identity == nil || data.Identity.FullName == "" {
			return ErrMissingPayload
		}
	case models.CategoryOther:
		// free-form: notes and custom fields only, nothing required
	}

	return nil
}
