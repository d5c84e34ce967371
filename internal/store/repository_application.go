// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openbenefits/go-benefit-vault/internal/utils"
	"github.com/openbenefits/go-benefit-vault/models"
)

// applicationRepository maps between [models.Application] and the generic
// record form. It sits on top of the encrypted store, so application_data
// travels encrypted without the repository knowing.
type applicationRepository struct {
	data DataStore
	ids  *utils.UUIDGenerator
}

// NewApplicationRepository returns an [ApplicationRepository] over the
// given store.
func NewApplicationRepository(data DataStore) ApplicationRepository {
	return &applicationRepository{data: data, ids: utils.NewUUIDGenerator()}
}

func (r *applicationRepository) Create(ctx context.Context, app models.Application) (models.Application, error) {
	if app.PublicID == "" {
		app.PublicID = r.ids.Generate()
	}

	rec := Record{
		"public_id":  app.PublicID,
		"benefit_id": app.BenefitID,
	}

	if app.ApplicationData != nil {
		rec["application_data"] = app.ApplicationData
	}
	if app.DocumentVerificationStatus != "" {
		rec["document_verification_status"] = app.DocumentVerificationStatus
	}

	stored, err := r.data.Create(ctx, EntityApplications, rec)
	if err != nil {
		return models.Application{}, fmt.Errorf("create application: %w", err)
	}

	return applicationFromRecord(stored), nil
}

func (r *applicationRepository) GetByPublicID(ctx context.Context, publicID string, withFiles bool) (models.Application, error) {
	rec, err := r.data.FindOne(ctx, EntityApplications, Filter{
		Eq:            map[string]any{"public_id": publicID},
		WithRelations: withFiles,
	})
	if err != nil {
		return models.Application{}, fmt.Errorf("get application %s: %w", publicID, err)
	}

	return applicationFromRecord(rec), nil
}

func (r *applicationRepository) UpdateDocumentVerificationStatus(ctx context.Context, id int64, status string) error {
	_, err := r.data.Update(ctx, EntityApplications, id, Record{
		"document_verification_status": status,
	})
	if err != nil {
		return fmt.Errorf("update verification status: %w", err)
	}

	return nil
}

func (r *applicationRepository) UpdateAmounts(ctx context.Context, id int64, amount models.BenefitAmount) error {
	_, err := r.data.Update(ctx, EntityApplications, id, Record{
		"calculated_amount": amount.CalculatedAmount,
		"final_amount":      amount.FinalAmount,
	})
	if err != nil {
		return fmt.Errorf("update amounts: %w", err)
	}

	return nil
}

func (r *applicationRepository) ListPendingEligibility(ctx context.Context, afterID int64, limit uint64) ([]models.Application, error) {
	recs, err := r.data.FindMany(ctx, EntityApplications, Filter{
		Eq:      map[string]any{"calculated_amount": nil},
		AfterID: afterID,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending eligibility: %w", err)
	}

	return applicationsFromRecords(recs), nil
}

func (r *applicationRepository) ListPendingVerification(ctx context.Context, afterID int64, limit uint64) ([]models.Application, error) {
	recs, err := r.data.FindMany(ctx, EntityApplications, Filter{
		Eq:      map[string]any{"document_verification_status": nil},
		AfterID: afterID,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending verification: %w", err)
	}

	return applicationsFromRecords(recs), nil
}

func applicationFromRecord(rec Record) models.Application {
	app := models.Application{
		ID:                         recInt64(rec, "id"),
		PublicID:                   recString(rec, "public_id"),
		BenefitID:                  recString(rec, "benefit_id"),
		DocumentVerificationStatus: recString(rec, "document_verification_status"),
		CalculatedAmount:           recFloat(rec, "calculated_amount"),
		FinalAmount:                recFloat(rec, "final_amount"),
		CreatedAt:                  recTime(rec, "created_at"),
		UpdatedAt:                  recTime(rec, "updated_at"),
	}

	// The decrypted value comes back as whatever JSON shape was encrypted;
	// anything other than an object is discarded.
	if data, ok := rec["application_data"].(map[string]any); ok {
		app.ApplicationData = data
	}

	if files, ok := rec[RelationFiles].([]Record); ok {
		app.Files = make([]models.ApplicationFile, 0, len(files))
		for _, f := range files {
			app.Files = append(app.Files, applicationFileFromRecord(f))
		}
	}

	return app
}

func applicationsFromRecords(recs []Record) []models.Application {
	apps := make([]models.Application, 0, len(recs))
	for _, rec := range recs {
		apps = append(apps, applicationFromRecord(rec))
	}

	return apps
}

// statusToJSON renders a file verification status for TEXT storage.
func statusToJSON(status models.FileVerificationStatus) (string, error) {
	raw, err := json.Marshal(status)
	if err != nil {
		return "", fmt.Errorf("marshal verification status: %w", err)
	}

	return string(raw), nil
}
