package workers

import (
	"context"
	"errors"
	"time"

	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/service"
	"github.com/openbenefits/go-benefit-vault/internal/store"
	"github.com/openbenefits/go-benefit-vault/models"
)

// verificationWorker periodically runs the document verification pipeline
// on applications whose documents have never been verified.
type verificationWorker struct {
	applications store.ApplicationRepository
	verification service.VerificationService
	interval     time.Duration
	log          *logger.Logger
}

// NewVerificationWorker builds the verification sweep.
func NewVerificationWorker(applications store.ApplicationRepository, verification service.VerificationService, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &verificationWorker{
		applications: applications,
		verification: verification,
		interval:     interval,
		log:          log,
	}
}

func (w *verificationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *verificationWorker) sweep(ctx context.Context) {
	log := w.log.With().Str("func", "verificationWorker.sweep").Logger()

	var lastSeen int64
	for {
		apps, err := w.applications.ListPendingVerification(ctx, lastSeen, sweepPageSize)
		if err != nil {
			log.Error().Err(err).Msg("failed to list pending applications")
			return
		}
		if len(apps) == 0 {
			return
		}

		for _, app := range apps {
			lastSeen = app.ID

			_, err = w.verification.VerifyDocuments(ctx, models.VerifyDocumentsRequest{
				ApplicationID: app.PublicID,
			})
			if errors.Is(err, service.ErrNoFilesToVerify) {
				continue
			}
			if err != nil {
				log.Error().Err(err).Str("application_id", app.PublicID).Msg("document verification failed")
			}
		}
	}
}
