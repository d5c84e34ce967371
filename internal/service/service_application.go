// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"

	"github.com/openbenefits/go-benefit-vault/internal/filestore"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/store"
	"github.com/openbenefits/go-benefit-vault/internal/utils"
	"github.com/openbenefits/go-benefit-vault/models"
)

type applicationService struct {
	applications store.ApplicationRepository
	files        store.ApplicationFileRepository
	storage      *filestore.Backends
	ids          *utils.UUIDGenerator
	log          *logger.Logger
}

// NewApplicationService returns the [ApplicationService] implementation.
func NewApplicationService(
	applications store.ApplicationRepository,
	files store.ApplicationFileRepository,
	storage *filestore.Backends,
	log *logger.Logger,
) ApplicationService {
	if log == nil {
		log = logger.Nop()
	}

	return &applicationService{
		applications: applications,
		files:        files,
		storage:      storage,
		ids:          utils.NewUUIDGenerator(),
		log:          log,
	}
}

// SubmitApplication creates the application row and, when a document is
// attached, stores its content and registers the file. The application
// payload is encrypted transparently below the repository.
func (s *applicationService) SubmitApplication(ctx context.Context, req models.SubmitApplicationRequest) (models.Application, error) {
	log := s.log.With().Str("func", "applicationService.SubmitApplication").Logger()

	if req.BenefitID == "" {
		return models.Application{}, ErrValidationNoBenefitID
	}
	if len(req.ApplicationData) == 0 {
		return models.Application{}, ErrValidationNoApplicationData
	}

	var document []byte
	if req.Document != "" {
		var err error
		document, err = base64.StdEncoding.DecodeString(req.Document)
		if err != nil {
			return models.Application{}, fmt.Errorf("%w: %w", ErrValidationInvalidDocument, err)
		}
	}

	app, err := s.applications.Create(ctx, models.Application{
		BenefitID:       req.BenefitID,
		ApplicationData: req.ApplicationData,
	})
	if err != nil {
		return models.Application{}, fmt.Errorf("submit application: %w", err)
	}

	if document != nil {
		file, uploadErr := s.storeDocument(ctx, app, document, req.IssuerName)
		if uploadErr != nil {
			// the application itself is already persisted; report the
			// document failure without losing it
			log.Error().Err(uploadErr).Str("application_id", app.PublicID).Msg("failed to store submitted document")

			return app, fmt.Errorf("store document: %w", uploadErr)
		}

		app.Files = append(app.Files, file)
	}

	return app, nil
}

func (s *applicationService) GetApplication(ctx context.Context, publicID string) (models.Application, error) {
	if publicID == "" {
		return models.Application{}, ErrValidationNoApplicationID
	}

	app, err := s.applications.GetByPublicID(ctx, publicID, true)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Application{}, fmt.Errorf("%w: %s", ErrApplicationNotFound, publicID)
	}
	if err != nil {
		return models.Application{}, fmt.Errorf("get application: %w", err)
	}

	return app, nil
}

// UploadDocument attaches one more document to an existing application.
func (s *applicationService) UploadDocument(ctx context.Context, req models.UploadFileRequest) (models.ApplicationFile, error) {
	if req.ApplicationID == "" {
		return models.ApplicationFile{}, ErrValidationNoApplicationID
	}

	content, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return models.ApplicationFile{}, fmt.Errorf("%w: %w", ErrValidationInvalidDocument, err)
	}

	app, err := s.applications.GetByPublicID(ctx, req.ApplicationID, false)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.ApplicationFile{}, fmt.Errorf("%w: %s", ErrApplicationNotFound, req.ApplicationID)
	}
	if err != nil {
		return models.ApplicationFile{}, fmt.Errorf("upload document: %w", err)
	}

	return s.storeDocument(ctx, app, content, req.IssuerName)
}

// storeDocument writes the content to the active file storage and registers
// the file row pointing at it, with the backend name recorded so later reads
// survive a backend switch.
func (s *applicationService) storeDocument(ctx context.Context, app models.Application, content []byte, issuerName string) (models.ApplicationFile, error) {
	storage, backend := s.storage.Active()

	filePublicID := s.ids.Generate()
	filePath := path.Join("applications", app.PublicID, filePublicID+".json")

	if err := storage.UploadFile(ctx, filePath, content); err != nil {
		return models.ApplicationFile{}, fmt.Errorf("upload file: %w", err)
	}

	file, err := s.files.Create(ctx, models.ApplicationFile{
		PublicID:       filePublicID,
		ApplicationID:  app.ID,
		FilePath:       filePath,
		StorageBackend: backend,
		IssuerName:     issuerName,
	})
	if err != nil {
		// keep storage and database consistent when registration fails
		if cleanupErr := storage.DeleteFile(ctx, filePath); cleanupErr != nil {
			s.log.Error().Err(cleanupErr).Str("file_path", filePath).Msg("failed to clean up orphaned document")
		}

		return models.ApplicationFile{}, fmt.Errorf("register file: %w", err)
	}

	return file, nil
}
