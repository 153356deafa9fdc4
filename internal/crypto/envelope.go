package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/mkosarev/keepsake/models"
)

const (
	// MinSecretLength is the minimum accepted length of the encryption
	// secret. Shorter secrets fail construction with ErrSecretTooShort.
	MinSecretLength = 32

	// saltSize is the per-message HKDF salt prepended to every blob.
	saltSize = 16

	// keyInfo domain-separates vault payload keys from any other use of
	// the same secret.
	keyInfo = "keepsake/vault/payload"
)

// envelopeService is the private implementation of [EnvelopeService].
// The secret and pepper are read-only after construction and safe to share
// across concurrent requests.
type envelopeService struct {
	secret []byte
	pepper []byte
}

// NewEnvelopeService constructs an [EnvelopeService] keyed by the
// process-wide encryption secret and PIN pepper.
//
// Returns ErrMissingSecret or ErrSecretTooShort when the secret is absent or
// shorter than [MinSecretLength] characters, and ErrMissingPepper when the
// pepper is absent. Construction is the single configuration gate: once an
// EnvelopeService exists, every operation on it has a usable key.
func NewEnvelopeService(secret, pepper string) (EnvelopeService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrSecretTooShort, MinSecretLength)
	}
	if pepper == "" {
		return nil, ErrMissingPepper
	}

	return &envelopeService{
		secret: []byte(secret),
		pepper: []byte(pepper),
	}, nil
}

// Encrypt implements [EnvelopeService]. The payload is marshalled to JSON
// and sealed with AES-256-GCM under a key derived per message:
//
//	key  = HKDF-SHA256(secret, salt, "keepsake/vault/payload")
//	blob = salt (16) || nonce (12) || ciphertext+tag
//
// The blob is returned base64 (standard encoding) so it can be stored in a
// text column and shipped over JSON unchanged.
func (e *envelopeService) Encrypt(payload any) (models.Ciphertext, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := e.newGCM(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// blob = salt || nonce || ciphertext
	blob := make([]byte, 0, saltSize+gcm.NonceSize()+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return models.Ciphertext(base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [EnvelopeService]. It splits the blob produced by
// [envelopeService.Encrypt] into salt, nonce and ciphertext, re-derives the
// message key, verifies the GCM tag and unmarshals the plaintext JSON into
// target.
//
// Returns ErrCiphertextMalformed when the blob cannot be decoded or is too
// short, and ErrAuthenticationFailed when the tag does not verify or the
// plaintext is not valid JSON.
func (e *envelopeService) Decrypt(ciphertext models.Ciphertext, target any) error {
	blob, err := base64.StdEncoding.DecodeString(string(ciphertext))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCiphertextMalformed, err)
	}

	if len(blob) < saltSize {
		return fmt.Errorf("%w: blob shorter than salt", ErrCiphertextMalformed)
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	gcm, err := e.newGCM(salt)
	if err != nil {
		return err
	}

	if len(rest) < gcm.NonceSize() {
		return fmt.Errorf("%w: blob shorter than nonce", ErrCiphertextMalformed)
	}
	nonce, sealed := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: plaintext is not valid json: %w", ErrAuthenticationFailed, err)
	}

	return nil
}

// HashPin implements [EnvelopeService]. It computes
// hex(HMAC-SHA256(pepper, pin)) - deterministic given (pin, pepper), with no
// feasible inverse. The pepper never leaves the server process and is never
// stored alongside the hash.
func (e *envelopeService) HashPin(pin string) string {
	mac := hmac.New(sha256.New, e.pepper)
	mac.Write([]byte(pin))
	return hex.EncodeToString(mac.Sum(nil))
}

// newGCM derives the per-message AES-256 key from the process secret and the
// given salt, and returns a ready AEAD.
func (e *envelopeService) newGCM(salt []byte) (cipher.AEAD, error) {
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, e.secret, salt, []byte(keyInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
