package crypto

import "errors"

// Configuration errors reported by NewEnvelopeService. Any of these blocks
// all vault functionality and requires operator intervention, so callers
// should log them loudly and fail closed.
var (
	// ErrMissingSecret is returned when the encryption secret is absent.
	ErrMissingSecret = errors.New("encryption secret is not configured")

	// ErrSecretTooShort is returned when the encryption secret is shorter
	// than MinSecretLength characters.
	ErrSecretTooShort = errors.New("encryption secret is too short")

	// ErrMissingPepper is returned when the PIN pepper is absent.
	ErrMissingPepper = errors.New("pin pepper is not configured")
)

// Envelope operation errors.
var (
	// ErrSerialization is returned by Encrypt when the payload cannot be
	// represented as JSON.
	ErrSerialization = errors.New("payload cannot be serialized to json")

	// ErrCiphertextMalformed is returned by Decrypt when the blob is not
	// valid base64 or is too short to contain salt, nonce and tag.
	// Indicates corrupted data.
	ErrCiphertextMalformed = errors.New("ciphertext is malformed: corrupted data")

	// ErrAuthenticationFailed is returned by Decrypt when the GCM
	// authentication tag does not verify. Either the encryption secret
	// changed since the data was encrypted (in which case the data is
	// permanently unreadable) or the blob was tampered with.
	ErrAuthenticationFailed = errors.New("ciphertext failed to authenticate: wrong key or corrupted data")
)
