package workers

import (
	"context"

	"github.com/openbenefits/go-benefit-vault/internal/config"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/service"
	"github.com/openbenefits/go-benefit-vault/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background sweeps: periodic eligibility checks
// for applications without amounts, and document verification for
// applications that were never verified.
func NewWorkers(
	applications store.ApplicationRepository,
	benefits service.BenefitService,
	verification service.VerificationService,
	cfg config.Workers,
	log *logger.Logger,
) *Workers {
	if log == nil {
		log = logger.Nop()
	}

	return &Workers{workers: []Worker{
		NewEligibilityWorker(applications, benefits, cfg.EligibilityInterval, log),
		NewVerificationWorker(applications, verification, cfg.VerificationInterval, log),
	}}
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
