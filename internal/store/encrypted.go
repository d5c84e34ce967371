// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/openbenefits/go-benefit-vault/internal/crypto"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
)

// Encrypted decorates a [DataStore] with transparent field-level
// encryption. Fields listed in the encryption map are encrypted on every
// write path and decrypted on every read path, so business logic above the
// decorator only ever sees plaintext.
//
// Writes are strict: if any mapped field fails to encrypt the whole
// operation is aborted, because a partially encrypted record is worse than
// no record. Reads are lenient: a field that fails to decrypt (key
// rotation gone wrong, corrupted blob) is set to nil and logged, and the
// rest of the record is still returned.
type Encrypted struct {
	inner     DataStore
	codec     crypto.Codec
	fields    EncryptionMap
	relations RelationMap
	log       *logger.Logger
}

// NewEncrypted wraps inner with the given codec and maps.
func NewEncrypted(inner DataStore, codec crypto.Codec, fields EncryptionMap, relations RelationMap, log *logger.Logger) *Encrypted {
	if log == nil {
		log = logger.Nop()
	}

	return &Encrypted{
		inner:     inner,
		codec:     codec,
		fields:    fields,
		relations: relations,
		log:       log,
	}
}

func (e *Encrypted) Create(ctx context.Context, entity string, rec Record) (Record, error) {
	enc, err := e.encryptFields(entity, rec)
	if err != nil {
		return nil, err
	}

	stored, err := e.inner.Create(ctx, entity, enc)
	if err != nil {
		return nil, err
	}

	e.decryptRecord(ctx, entity, stored)

	return stored, nil
}

func (e *Encrypted) Update(ctx context.Context, entity string, id int64, fields Record) (Record, error) {
	enc, err := e.encryptFields(entity, fields)
	if err != nil {
		return nil, err
	}

	stored, err := e.inner.Update(ctx, entity, id, enc)
	if err != nil {
		return nil, err
	}

	e.decryptRecord(ctx, entity, stored)

	return stored, nil
}

func (e *Encrypted) FindOne(ctx context.Context, entity string, filter Filter) (Record, error) {
	rec, err := e.inner.FindOne(ctx, entity, filter)
	if err != nil {
		return nil, err
	}

	e.decryptRecord(ctx, entity, rec)

	return rec, nil
}

func (e *Encrypted) FindMany(ctx context.Context, entity string, filter Filter) ([]Record, error) {
	recs, err := e.inner.FindMany(ctx, entity, filter)
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		e.decryptRecord(ctx, entity, rec)
	}

	return recs, nil
}

func (e *Encrypted) UpdateBatch(ctx context.Context, entity string, updates []BatchUpdate) error {
	enc := make([]BatchUpdate, 0, len(updates))
	for _, upd := range updates {
		fields, err := e.encryptFields(entity, upd.Fields)
		if err != nil {
			return err
		}
		enc = append(enc, BatchUpdate{ID: upd.ID, Fields: fields})
	}

	return e.inner.UpdateBatch(ctx, entity, enc)
}

// encryptFields returns a copy of rec with every mapped field replaced by
// its ciphertext. Unmapped fields and nil values pass through unchanged.
func (e *Encrypted) encryptFields(entity string, rec Record) (Record, error) {
	mapped := e.fields[entity]
	if len(mapped) == 0 {
		return rec, nil
	}

	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}

	for _, field := range mapped {
		value, present := out[field]
		if !present || value == nil {
			continue
		}

		blob, err := e.codec.Encrypt(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrEncryptingField, entity, field, err)
		}

		out[field] = blob
	}

	return out, nil
}

// decryptRecord decrypts the mapped fields of rec in place, then recurses
// into nested relation records. A field that fails to decrypt is nulled
// and logged; the record itself survives.
func (e *Encrypted) decryptRecord(ctx context.Context, entity string, rec Record) {
	for _, field := range e.fields[entity] {
		value, present := rec[field]
		if !present || value == nil {
			continue
		}

		blob, ok := value.(string)
		if !ok {
			continue
		}

		plain, err := e.codec.Decrypt(blob)
		if err != nil {
			e.log.Error().
				Str("func", "Encrypted.decryptRecord").
				Str("entity", entity).
				Int64("record_id", recInt64(rec, "id")).
				Str("field", field).
				Err(err).
				Msg("failed to decrypt field, returning null")
			rec[field] = nil

			continue
		}

		rec[field] = plain
	}

	for key, childEntity := range e.relations[entity] {
		switch children := rec[key].(type) {
		case []Record:
			for _, child := range children {
				e.decryptRecord(ctx, childEntity, child)
			}
		case Record:
			e.decryptRecord(ctx, childEntity, children)
		}
	}
}
