package models

// VaultData is the decrypted payload of a vault item. It is serialized to
// JSON and stored encrypted inside VaultItem.Ciphertext. Which group of
// fields is meaningful depends on VaultItem.Category; the boundary
// validators reject payloads that mix fields across categories.
type VaultData struct {
	Password *PasswordData `json:"password,omitempty"`
	Card     *CardData     `json:"card,omitempty"`
	Note     *NoteData     `json:"note,omitempty"`
	Identity *IdentityData `json:"identity,omitempty"`

	// Notes contains an optional free-form annotation,
	// valid for every category.
	Notes string `json:"notes,omitempty"`

	// CustomFields contains optional user-defined key/value pairs,
	// valid for every category.
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

// PasswordData represents decrypted login credentials.
type PasswordData struct {
	// Username is the login identifier used for authentication.
	Username string `json:"username"`

	// Password is the secret credential associated with the username.
	Password string `json:"password"`

	// URL is the optional resource where the credentials apply.
	URL string `json:"url,omitempty"`
}

// CardData represents decrypted payment card information.
type CardData struct {
	// Number is the primary account number (PAN) of the card.
	Number string `json:"cardNumber"`

	// HolderName is the name printed on the card.
	HolderName string `json:"cardholderName"`

	// ExpiryDate is the card expiration in MM/YY form.
	ExpiryDate string `json:"expiryDate"`

	// CVV is the card security code.
	CVV string `json:"cvv"`
}

// NoteData represents decrypted free-form textual content.
type NoteData struct {
	// Note contains the textual payload.
	Note string `json:"note"`
}

// IdentityData represents decrypted personal identity information.
type IdentityData struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}
