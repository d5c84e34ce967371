// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/base64"
	"fmt"
)

// encryptionKeySize is the required length of decoded key material; it
// mirrors the AES-256 key size enforced by the crypto codec.
const encryptionKeySize = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Key-material problems are deliberately fatal here: a process with a missing
// or mis-sized encryption key must never start serving traffic.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if err := validateKey(cfg.App.EncryptionKey); err != nil {
		return fmt.Errorf("%w: encryption key: %w", ErrInvalidAppConfigs, err)
	}

	// The previous key is needed only by the rotation job, but when it is
	// set it must still be well-formed.
	if cfg.App.PreviousEncryptionKey != "" {
		if err := validateKey(cfg.App.PreviousEncryptionKey); err != nil {
			return fmt.Errorf("%w: previous encryption key: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Verifier.URL == "" {
		return fmt.Errorf("%w: verifier URL is empty", ErrInvalidVerifierConfigs)
	}

	switch cfg.Storage.Files.Backend {
	case "", "local":
	case "s3":
		if cfg.Storage.Files.S3Bucket == "" || cfg.Storage.Files.S3Region == "" {
			return fmt.Errorf("%w: s3 backend requires bucket and region", ErrInvalidFileStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidFileStorageConfigs, cfg.Storage.Files.Backend)
	}

	return nil
}

func validateKey(encoded string) error {
	if encoded == "" {
		return fmt.Errorf("key is not set")
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("key is not valid base64: %w", err)
	}

	if len(key) != encryptionKeySize {
		return fmt.Errorf("key decodes to %d bytes, want %d", len(key), encryptionKeySize)
	}

	return nil
}
