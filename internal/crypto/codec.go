// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the authenticated field-encryption codec used by
// the encrypted data store and the key-rotation job.
//
// Values are serialized to JSON and encrypted with AES-256-GCM. The stored
// blob is base64(nonce ‖ authTag ‖ ciphertext) with fixed-length nonce
// (12 bytes) and tag (16 bytes) so the decrypt side splits it by slicing.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// KeySize is the required length of decoded key material (AES-256).
	KeySize = 32

	nonceSize = 12
	tagSize   = 16
)

// aesCodec is the AES-256-GCM implementation of [Codec].
type aesCodec struct {
	key []byte
}

// NewCodec constructs a [Codec] for the given 32-byte key. The key length is
// checked once here; callers must treat an error as fatal misconfiguration,
// not a per-call failure.
func NewCodec(key []byte) (Codec, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	return &aesCodec{key: key}, nil
}

// Encrypt implements [Codec]. It marshals value to JSON, encrypts it under a
// fresh random 12-byte nonce, and packages the result as
// base64(nonce ‖ tag ‖ ciphertext).
func (c *aesCodec) Encrypt(value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}

	gcm, err := c.newGCM()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// gcm.Seal appends the tag after the ciphertext; the stored layout keeps
	// the tag in the header so the blob splits by fixed-length slicing.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	blob := make([]byte, 0, nonceSize+tagSize+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Codec]. It splits the blob into nonce, tag, and
// ciphertext, verifies the authentication tag, and unmarshals the plaintext
// back into a decoded JSON value.
func (c *aesCodec) Decrypt(blob string) (any, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlob, err)
	}

	if len(raw) < nonceSize+tagSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than nonce and tag", ErrMalformedBlob, len(raw))
	}

	nonce := raw[:nonceSize]
	tag := raw[nonceSize : nonceSize+tagSize]
	ciphertext := raw[nonceSize+tagSize:]

	gcm, err := c.newGCM()
	if err != nil {
		return nil, err
	}

	// Reassemble ciphertext ‖ tag, the layout gcm.Open expects.
	sealed := make([]byte, 0, len(ciphertext)+tagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	var value any
	if err := json.Unmarshal(plaintext, &value); err != nil {
		return nil, fmt.Errorf("unmarshal decrypted value: %w", err)
	}

	return value, nil
}

func (c *aesCodec) newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
