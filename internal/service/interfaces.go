package service

import (
	"context"

	"github.com/openbenefits/go-benefit-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ApplicationService manages the lifecycle of benefit applications and
// their submitted documents.
type ApplicationService interface {
	SubmitApplication(ctx context.Context, req models.SubmitApplicationRequest) (models.Application, error)
	GetApplication(ctx context.Context, publicID string) (models.Application, error)
	UploadDocument(ctx context.Context, req models.UploadFileRequest) (models.ApplicationFile, error)
}

// VerificationService runs the document verification pipeline for one
// application.
type VerificationService interface {
	VerifyDocuments(ctx context.Context, req models.VerifyDocumentsRequest) (models.VerifyDocumentsResult, error)
}

// BenefitService evaluates eligibility and benefit amounts through the
// external registry.
type BenefitService interface {
	CheckBenefitEligibility(ctx context.Context, publicID string) (models.BenefitAmount, error)
}
