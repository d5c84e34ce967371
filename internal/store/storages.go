package store

import (
	"github.com/openbenefits/go-benefit-vault/internal/crypto"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
)

// Storages bundles every persistence dependency the services need. Data is
// the encrypted store used for all regular access; Raw bypasses encryption
// and exists only for the key rotation job, which must read ciphertexts
// as stored.
type Storages struct {
	Data DataStore
	Raw  DataStore

	Applications     ApplicationRepository
	ApplicationFiles ApplicationFileRepository
}

// NewStorages wires the SQL store, the encryption decorator and the typed
// repositories together.
func NewStorages(db *DB, codec crypto.Codec, log *logger.Logger) *Storages {
	raw := NewSQLStore(db)
	data := NewEncrypted(raw, codec, DefaultEncryptionMap(), DefaultRelationMap(), log)

	return &Storages{
		Data:             data,
		Raw:              raw,
		Applications:     NewApplicationRepository(data),
		ApplicationFiles: NewApplicationFileRepository(data),
	}
}
