// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openbenefits/go-benefit-vault/internal/utils"
	"github.com/openbenefits/go-benefit-vault/models"
)

type applicationFileRepository struct {
	data DataStore
	ids  *utils.UUIDGenerator
}

// NewApplicationFileRepository returns an [ApplicationFileRepository] over
// the given store.
func NewApplicationFileRepository(data DataStore) ApplicationFileRepository {
	return &applicationFileRepository{data: data, ids: utils.NewUUIDGenerator()}
}

func (r *applicationFileRepository) Create(ctx context.Context, file models.ApplicationFile) (models.ApplicationFile, error) {
	if file.PublicID == "" {
		file.PublicID = r.ids.Generate()
	}
	if file.StorageBackend == "" {
		file.StorageBackend = models.StorageBackendLocal
	}

	rec := Record{
		"public_id":       file.PublicID,
		"application_id":  file.ApplicationID,
		"file_path":       file.FilePath,
		"storage_backend": file.StorageBackend,
	}

	if file.IssuerName != "" {
		rec["issuer_name"] = file.IssuerName
	}

	stored, err := r.data.Create(ctx, EntityApplicationFiles, rec)
	if err != nil {
		return models.ApplicationFile{}, fmt.Errorf("create application file: %w", err)
	}

	return applicationFileFromRecord(stored), nil
}

func (r *applicationFileRepository) GetByApplication(ctx context.Context, applicationID int64) ([]models.ApplicationFile, error) {
	recs, err := r.data.FindMany(ctx, EntityApplicationFiles, Filter{
		Eq: map[string]any{"application_id": applicationID},
	})
	if err != nil {
		return nil, fmt.Errorf("get files for application %d: %w", applicationID, err)
	}

	return applicationFilesFromRecords(recs), nil
}

func (r *applicationFileRepository) GetByPublicIDs(ctx context.Context, applicationID int64, publicIDs []string) ([]models.ApplicationFile, error) {
	recs, err := r.data.FindMany(ctx, EntityApplicationFiles, Filter{
		Eq: map[string]any{
			"application_id": applicationID,
			"public_id":      publicIDs,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get files by ids: %w", err)
	}

	return applicationFilesFromRecords(recs), nil
}

func (r *applicationFileRepository) UpdateVerificationStatus(ctx context.Context, id int64, status models.FileVerificationStatus) error {
	raw, err := statusToJSON(status)
	if err != nil {
		return err
	}

	if _, err = r.data.Update(ctx, EntityApplicationFiles, id, Record{
		"verification_status": raw,
	}); err != nil {
		return fmt.Errorf("update file verification status: %w", err)
	}

	return nil
}

func applicationFileFromRecord(rec Record) models.ApplicationFile {
	file := models.ApplicationFile{
		ID:             recInt64(rec, "id"),
		PublicID:       recString(rec, "public_id"),
		ApplicationID:  recInt64(rec, "application_id"),
		FilePath:       recString(rec, "file_path"),
		StorageBackend: recString(rec, "storage_backend"),
		CreatedAt:      recTime(rec, "created_at"),
		UpdatedAt:      recTime(rec, "updated_at"),
	}

	// issuer_name is encrypted at rest; the decrypted value is a JSON
	// string.
	if issuer, ok := rec["issuer_name"].(string); ok {
		file.IssuerName = issuer
	}

	if raw := recString(rec, "verification_status"); raw != "" {
		var status models.FileVerificationStatus
		if err := json.Unmarshal([]byte(raw), &status); err == nil {
			file.VerificationStatus = &status
		}
	}

	return file
}

func applicationFilesFromRecords(recs []Record) []models.ApplicationFile {
	files := make([]models.ApplicationFile, 0, len(recs))
	for _, rec := range recs {
		files = append(files, applicationFileFromRecord(rec))
	}

	return files
}
