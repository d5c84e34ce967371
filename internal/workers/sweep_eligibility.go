package workers

import (
	"context"
	"errors"
	"time"

	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/service"
	"github.com/openbenefits/go-benefit-vault/internal/store"
)

const (
	defaultSweepInterval = 5 * time.Minute
	sweepPageSize        = 100
)

// eligibilityWorker periodically picks up applications without calculated
// amounts and runs the benefit eligibility check on each.
type eligibilityWorker struct {
	applications store.ApplicationRepository
	benefits     service.BenefitService
	interval     time.Duration
	log          *logger.Logger
}

// NewEligibilityWorker builds the eligibility sweep.
func NewEligibilityWorker(applications store.ApplicationRepository, benefits service.BenefitService, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	return &eligibilityWorker{
		applications: applications,
		benefits:     benefits,
		interval:     interval,
		log:          log,
	}
}

func (w *eligibilityWorker) Run(ctx context.Context) {
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

func (w *eligibilityWorker) sweep(ctx context.Context) {
	log := w.log.With().Str("func", "eligibilityWorker.sweep").Logger()

	var lastSeen int64
	for {
		apps, err := w.applications.ListPendingEligibility(ctx, lastSeen, sweepPageSize)
		if err != nil {
			log.Error().Err(err).Msg("failed to list pending applications")
			return
		}
		if len(apps) == 0 {
			return
		}

		for _, app := range apps {
			lastSeen = app.ID

			if _, err = w.benefits.CheckBenefitEligibility(ctx, app.PublicID); err != nil {
				if errors.Is(err, service.ErrNotEligible) {
					log.Info().Str("application_id", app.PublicID).Msg("application not eligible")
					continue
				}

				log.Error().Err(err).Str("application_id", app.PublicID).Msg("eligibility check failed")
			}
		}
	}
}
