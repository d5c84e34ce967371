// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// LoadKey decodes base64-encoded key material from configuration.
//
// The decoded key must be exactly [KeySize] bytes. Anything else, including
// an empty string, is a configuration error that must stop the process
// before it serves traffic.
func LoadKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, ErrMissingKey
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}

	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	return key, nil
}

// DeriveKey derives a 256-bit encryption key from a passphrase and salt using
// Argon2id with the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// Intended for development and test deployments that have no pre-provisioned
// key material; production deployments should configure a random key.
func DeriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, KeySize)
}
