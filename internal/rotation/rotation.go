// SPDX-License-Identifier: Apache-2.0

// Package rotation re-encrypts every encrypted field from a previous key
// to the current one. It is run as a standalone job (cmd/rotate) during
// key rollover.
package rotation

import (
	"context"
	"fmt"

	"github.com/openbenefits/go-benefit-vault/internal/crypto"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/store"
)

// DefaultBatchSize is used when the configured batch size is zero.
const DefaultBatchSize = 100

// EntityReport is the outcome of rotating one entity's rows.
type EntityReport struct {
	Entity      string
	RowsUpdated int
	Errors      int
}

// Job walks every entity in the encryption map and re-encrypts its mapped
// fields. It works on the raw store: values must stay in their stored
// ciphertext form until the job itself decrypts them with the old key.
type Job struct {
	raw       store.DataStore
	oldCodec  crypto.Codec
	newCodec  crypto.Codec
	fields    store.EncryptionMap
	batchSize uint64
	log       *logger.Logger
}

// NewJob builds a rotation job over the raw store.
func NewJob(raw store.DataStore, oldCodec, newCodec crypto.Codec, fields store.EncryptionMap, batchSize uint64, log *logger.Logger) *Job {
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Job{
		raw:       raw,
		oldCodec:  oldCodec,
		newCodec:  newCodec,
		fields:    fields,
		batchSize: batchSize,
		log:       log,
	}
}

// Run rotates every entity and returns one report per entity. A row or
// field that cannot be rotated is counted and skipped; only a failure to
// read a batch aborts that entity's walk.
func (j *Job) Run(ctx context.Context) ([]EntityReport, error) {
	reports := make([]EntityReport, 0, len(j.fields))

	for entity, fields := range j.fields {
		report, err := j.rotateEntity(ctx, entity, fields)
		if err != nil {
			return reports, fmt.Errorf("rotate %s: %w", entity, err)
		}

		reports = append(reports, report)
	}

	return reports, nil
}

func (j *Job) rotateEntity(ctx context.Context, entity string, fields []string) (EntityReport, error) {
	log := j.log.With().Str("func", "Job.rotateEntity").Str("entity", entity).Logger()
	report := EntityReport{Entity: entity}

	var lastSeen int64
	for {
		recs, err := j.raw.FindMany(ctx, entity, store.Filter{
			AfterID: lastSeen,
			Limit:   j.batchSize,
		})
		if err != nil {
			return report, err
		}

		if len(recs) == 0 {
			break
		}

		updates := make([]store.BatchUpdate, 0, len(recs))
		for _, rec := range recs {
			id := recID(rec)
			// cursor advances past every row, including failed ones
			lastSeen = id

			rotated, fieldErrs := j.rotateFields(rec, fields)
			report.Errors += fieldErrs

			if len(rotated) > 0 {
				updates = append(updates, store.BatchUpdate{ID: id, Fields: rotated})
			}
		}

		if len(updates) > 0 {
			if err = j.raw.UpdateBatch(ctx, entity, updates); err != nil {
				log.Error().Err(err).Int64("last_seen", lastSeen).Msg("batch update failed, continuing with next batch")
				report.Errors += len(updates)
			} else {
				report.RowsUpdated += len(updates)
			}
		}
	}

	return report, nil
}

// rotateFields re-encrypts the mapped fields of one row, skipping nulls
// and fields that fail on either side of the rotation.
func (j *Job) rotateFields(rec store.Record, fields []string) (store.Record, int) {
	log := j.log.With().Str("func", "Job.rotateFields").Int64("record_id", recID(rec)).Logger()

	rotated := store.Record{}
	failures := 0

	for _, field := range fields {
		blob, ok := rec[field].(string)
		if !ok || blob == "" {
			continue
		}

		plain, err := j.oldCodec.Decrypt(blob)
		if err != nil {
			log.Error().Str("field", field).Err(err).Msg("failed to decrypt with previous key")
			failures++

			continue
		}

		fresh, err := j.newCodec.Encrypt(plain)
		if err != nil {
			log.Error().Str("field", field).Err(err).Msg("failed to encrypt with current key")
			failures++

			continue
		}

		rotated[field] = fresh
	}

	return rotated, failures
}

func recID(rec store.Record) int64 {
	if id, ok := rec["id"].(int64); ok {
		return id
	}

	return 0
}
