package models

// Category defines the semantic type of the encrypted payload
// stored inside VaultItem.Ciphertext.
// The value determines which fields of VaultData are meaningful.
type Category string

const (
	// CategoryPassword represents login credentials:
	// username, password, and an optional URL.
	CategoryPassword Category = "password"

	// CategoryCard represents payment card information.
	// All fields are considered highly sensitive and always encrypted.
	CategoryCard Category = "card"

	// CategoryNote represents a free-form secure note.
	CategoryNote Category = "note"

	// CategoryIdentity represents personal identity information
	// (full name, email, phone, address, date of birth).
	CategoryIdentity Category = "identity"

	// CategoryOther represents any payload that does not fit
	// the categories above.
	CategoryOther Category = "other"
)

// Valid reports whether c is one of the closed set of known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPassword, CategoryCard, CategoryNote, CategoryIdentity, CategoryOther:
		return true
	}
	return false
}
