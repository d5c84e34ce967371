package crypto

import "errors"

var (
	// ErrMissingKey is returned by LoadKey when no key material is
	// configured. Treated as a fatal startup condition by every caller.
	ErrMissingKey = errors.New("encryption key is not configured")

	// ErrInvalidKeySize is returned when decoded key material is not
	// exactly 32 bytes. Treated as a fatal startup condition.
	ErrInvalidKeySize = errors.New("encryption key must decode to exactly 32 bytes")

	// ErrMalformedBlob is returned by Decrypt when the blob is not valid
	// base64 or is too short to contain a nonce and authentication tag.
	ErrMalformedBlob = errors.New("malformed encrypted blob")

	// ErrDecryptionFailed is returned by Decrypt when the authentication
	// tag does not verify: wrong key, corrupted ciphertext, or tampering.
	ErrDecryptionFailed = errors.New("decryption failed")
)
