package crypto

import "github.com/mkosarev/keepsake/models"

// EnvelopeService is the encryption envelope for vault payloads. It owns the
// only reversible transform in the system (payload <-> ciphertext) plus the
// irreversible PIN hash.
//
// The two mechanisms are deliberately separate: vault payloads must be
// recoverable with the encryption secret, while a PIN hash must not be,
// otherwise anyone holding the shared secret could trivially brute-force
// short numeric PINs.
type EnvelopeService interface {
	// Encrypt serializes payload to JSON and encrypts it with AES-256-GCM.
	// The returned ciphertext is a self-contained base64 blob:
	// salt || nonce || ciphertext+tag.
	Encrypt(payload any) (models.Ciphertext, error)

	// Decrypt reverses Encrypt and unmarshals the plaintext JSON into
	// target (a non-nil pointer, same as encoding/json.Unmarshal).
	// Unexpected-but-valid JSON shapes are not an error; the caller
	// interprets sub-fields by category.
	Decrypt(ciphertext models.Ciphertext, target any) error

	// HashPin computes the deterministic one-way hash of pin mixed with
	// the server-held pepper. Two calls with the same pin and pepper
	// produce identical output.
	HashPin(pin string) string
}
