package config

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *StructuredConfig {
	key := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x2A}, encryptionKeySize))
	return &StructuredConfig{
		App: App{
			EncryptionKey: key,
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/benefits?sslmode=disable"},
		},
		Verifier: Verifier{URL: "http://localhost:3000/verify"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	require.NoError(t, validTestConfig().validate())
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestValidate_MissingEncryptionKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.App.EncryptionKey = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate_ShortEncryptionKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.App.EncryptionKey = base64.StdEncoding.EncodeToString([]byte("too short"))

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate_NotBase64EncryptionKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.App.EncryptionKey = "%%% not base64 %%%"

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate_MalformedPreviousKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.App.PreviousEncryptionKey = base64.StdEncoding.EncodeToString([]byte("short"))

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate_MissingVerifierURL(t *testing.T) {
	cfg := validTestConfig()
	cfg.Verifier.URL = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidVerifierConfigs)
}

func TestValidate_S3BackendRequiresBucketAndRegion(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.Files.Backend = "s3"

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidFileStorageConfigs)

	cfg.Storage.Files.S3Bucket = "benefit-docs"
	cfg.Storage.Files.S3Region = "eu-west-1"
	assert.NoError(t, cfg.validate())
}

func TestValidate_UnknownFileBackend(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.Files.Backend = "ftp"

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidFileStorageConfigs)
}
