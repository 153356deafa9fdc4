package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLabel       = errors.New("label is required")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrMissingPayload   = errors.New("payload is missing the category's required fields")
	ErrForeignPayload   = errors.New("payload carries fields of another category")
	ErrCategoryRequired = errors.New("category is required when payload is provided")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyPin     = errors.New("pin is required")
	ErrPinTooShort  = errors.New("pin must be at least 4 digits")
	ErrPinNotDigits = errors.New("pin must contain digits only")
)
