// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/openbenefits/go-benefit-vault/internal/config"
	"github.com/openbenefits/go-benefit-vault/internal/filestore"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/store"
	"github.com/openbenefits/go-benefit-vault/internal/verifier"
	"github.com/openbenefits/go-benefit-vault/models"
)

// Per-file failure messages surfaced to the caller and stored in the file
// verification status.
const (
	msgFilePathMissing = "File path is missing"
	msgFileReadFailed  = "Failed to read file content"
	msgFileParseFailed = "Failed to parse credential document"

	msgAllVerified  = "All documents verified successfully"
	msgSomeVerified = "Some documents could not be verified"
	msgNoneVerified = "No documents could be verified"
)

type verificationService struct {
	applications store.ApplicationRepository
	files        store.ApplicationFileRepository
	storage      *filestore.Backends
	verifier     verifier.Client
	appCfg       config.App
	log          *logger.Logger
}

// NewVerificationService returns the [VerificationService] implementation.
func NewVerificationService(
	applications store.ApplicationRepository,
	files store.ApplicationFileRepository,
	storage *filestore.Backends,
	verifierClient verifier.Client,
	appCfg config.App,
	log *logger.Logger,
) VerificationService {
	if log == nil {
		log = logger.Nop()
	}

	return &verificationService{
		applications: applications,
		files:        files,
		storage:      storage,
		verifier:     verifierClient,
		appCfg:       appCfg,
		log:          log,
	}
}

// VerifyDocuments runs the verification pipeline over the application's
// documents, or over the explicitly requested subset. Files are processed
// sequentially and in isolation: one bad document never stops the run.
// The aggregate status is computed over exactly the files of this run and
// always overwrites the application's previous status.
func (s *verificationService) VerifyDocuments(ctx context.Context, req models.VerifyDocumentsRequest) (models.VerifyDocumentsResult, error) {
	if req.ApplicationID == "" {
		return models.VerifyDocumentsResult{}, ErrValidationNoApplicationID
	}

	// explicit ids are validated up front, before any file is touched
	for _, id := range req.ApplicationFileIDs {
		if _, err := uuid.Parse(id); err != nil {
			return models.VerifyDocumentsResult{}, fmt.Errorf("%w: %s", ErrValidationInvalidFileID, id)
		}
	}

	app, err := s.applications.GetByPublicID(ctx, req.ApplicationID, false)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.VerifyDocumentsResult{}, fmt.Errorf("%w: %s", ErrApplicationNotFound, req.ApplicationID)
	}
	if err != nil {
		return models.VerifyDocumentsResult{}, fmt.Errorf("load application: %w", err)
	}

	files, err := s.resolveFiles(ctx, app, req.ApplicationFileIDs)
	if err != nil {
		return models.VerifyDocumentsResult{}, err
	}
	if len(files) == 0 {
		return models.VerifyDocumentsResult{}, fmt.Errorf("%w: application %s", ErrNoFilesToVerify, req.ApplicationID)
	}

	results := make([]models.VerificationResult, 0, len(files))
	for _, file := range files {
		results = append(results, s.verifyFile(ctx, file))
	}

	status, code, message := aggregate(results)

	if err = s.applications.UpdateDocumentVerificationStatus(ctx, app.ID, status); err != nil {
		return models.VerifyDocumentsResult{}, fmt.Errorf("persist aggregate status: %w", err)
	}

	return models.VerifyDocumentsResult{
		IsSuccess: code < http.StatusBadRequest,
		Code:      code,
		Response: models.VerifyDocumentsResponse{
			ApplicationID: app.PublicID,
			Status:        status,
			Message:       message,
			Files:         results,
		},
	}, nil
}

// resolveFiles selects the files of this run: the explicit subset when ids
// were given, otherwise every file of the application.
func (s *verificationService) resolveFiles(ctx context.Context, app models.Application, ids []string) ([]models.ApplicationFile, error) {
	if len(ids) > 0 {
		files, err := s.files.GetByPublicIDs(ctx, app.ID, ids)
		if err != nil {
			return nil, fmt.Errorf("load requested files: %w", err)
		}

		return files, nil
	}

	files, err := s.files.GetByApplication(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("load application files: %w", err)
	}

	return files, nil
}

// verifyFile runs one document through load, parse and the external
// verifier, persists its status, and reports the transient result. Every
// failure mode resolves to an Unverified status; nothing escapes as an
// error.
func (s *verificationService) verifyFile(ctx context.Context, file models.ApplicationFile) models.VerificationResult {
	log := s.log.With().
		Str("func", "verificationService.verifyFile").
		Str("file_id", file.PublicID).
		Logger()

	outcome := s.evaluateFile(ctx, file)

	status := models.FileVerificationStatus{Status: models.FileStatusVerified}
	if !outcome.Valid {
		status = models.FileVerificationStatus{
			Status:             models.FileStatusUnverified,
			VerificationErrors: outcome.Errors,
		}
	}

	if err := s.files.UpdateVerificationStatus(ctx, file.ID, status); err != nil {
		log.Error().Err(err).Msg("failed to persist file verification status")
	}

	message := outcome.Message
	if outcome.Valid {
		message = ""
	}

	return models.VerificationResult{
		FileID:   file.PublicID,
		FilePath: file.FilePath,
		Valid:    outcome.Valid,
		Status:   status.Status,
		Message:  message,
	}
}

// evaluateFile loads and parses the stored credential and asks the
// verifier about it. Content is read from the backend the file was declared
// against, not the currently active one.
func (s *verificationService) evaluateFile(ctx context.Context, file models.ApplicationFile) models.VerifierOutcome {
	if file.FilePath == "" {
		return rejection(msgFilePathMissing, file.PublicID)
	}

	storage, err := s.storage.For(file.StorageBackend)
	if err != nil {
		return rejection(msgFileReadFailed, file.StorageBackend)
	}

	content, err := storage.GetFile(ctx, file.FilePath)
	if err != nil || content == nil {
		return rejection(msgFileReadFailed, file.FilePath)
	}

	credential := decodeCredential(content)
	if !json.Valid(credential) {
		return rejection(msgFileParseFailed, file.FilePath)
	}

	issuer := strings.TrimSpace(file.IssuerName)
	if issuer == "" {
		issuer = s.appCfg.DefaultIssuerName
	}

	outcome, err := s.verifier.VerifyCredential(ctx, credential, issuer)
	if err != nil {
		return rejection(models.UnknownVerificationError, err.Error())
	}

	return outcome
}

// decodeCredential percent-decodes stored content that arrives URL-encoded
// (legacy uploads start with '%'); everything else passes through as-is.
func decodeCredential(content []byte) json.RawMessage {
	text := string(content)
	if !strings.HasPrefix(text, "%") {
		return content
	}

	decoded, err := url.PathUnescape(text)
	if err != nil {
		return content
	}

	return json.RawMessage(decoded)
}

// aggregate reduces per-file results into the application-level status.
func aggregate(results []models.VerificationResult) (status string, code int, message string) {
	verified := 0
	for _, r := range results {
		if r.Valid {
			verified++
		}
	}

	switch {
	case verified == len(results):
		return models.ApplicationVerified, http.StatusOK, msgAllVerified
	case verified > 0:
		return models.ApplicationPartiallyVerified, http.StatusMultiStatus, msgSomeVerified
	default:
		return models.ApplicationUnverified, http.StatusUnprocessableEntity, msgNoneVerified
	}
}

func rejection(message, raw string) models.VerifierOutcome {
	return models.VerifierOutcome{
		Valid:   false,
		Message: message,
		Errors:  []models.VerificationError{{Error: message, Raw: raw}},
	}
}
