package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/registry"
	"github.com/openbenefits/go-benefit-vault/internal/store"
	"github.com/openbenefits/go-benefit-vault/models"
)

type benefitService struct {
	applications store.ApplicationRepository
	registry     registry.Client
	log          *logger.Logger
}

// NewBenefitService returns the [BenefitService] implementation.
func NewBenefitService(applications store.ApplicationRepository, registryClient registry.Client, log *logger.Logger) BenefitService {
	if log == nil {
		log = logger.Nop()
	}

	return &benefitService{
		applications: applications,
		registry:     registryClient,
		log:          log,
	}
}

// CheckBenefitEligibility asks the registry whether the application
// qualifies for its benefit, calculates the amounts and persists them on
// the application.
func (s *benefitService) CheckBenefitEligibility(ctx context.Context, publicID string) (models.BenefitAmount, error) {
	log := s.log.With().
		Str("func", "benefitService.CheckBenefitEligibility").
		Str("application_id", publicID).
		Logger()

	if publicID == "" {
		return models.BenefitAmount{}, ErrValidationNoApplicationID
	}

	app, err := s.applications.GetByPublicID(ctx, publicID, false)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.BenefitAmount{}, fmt.Errorf("%w: %s", ErrApplicationNotFound, publicID)
	}
	if err != nil {
		return models.BenefitAmount{}, fmt.Errorf("load application: %w", err)
	}

	eligibility, err := s.registry.CheckEligibility(ctx, app.BenefitID, app.ApplicationData)
	if err != nil {
		return models.BenefitAmount{}, fmt.Errorf("check eligibility: %w", err)
	}

	if !eligibility.Eligible {
		// ineligible applications settle at zero so the sweep does not
		// pick them up again
		if updErr := s.applications.UpdateAmounts(ctx, app.ID, models.BenefitAmount{}); updErr != nil {
			log.Error().Err(updErr).Msg("failed to persist zero amounts")
		}

		return models.BenefitAmount{}, fmt.Errorf("%w: %s", ErrNotEligible, eligibility.Reason)
	}

	amount, err := s.registry.CalculateAmount(ctx, app.BenefitID, app.ApplicationData)
	if err != nil {
		return models.BenefitAmount{}, fmt.Errorf("calculate amount: %w", err)
	}

	if err = s.applications.UpdateAmounts(ctx, app.ID, amount); err != nil {
		return models.BenefitAmount{}, fmt.Errorf("persist amounts: %w", err)
	}

	log.Info().
		Float64("calculated_amount", amount.CalculatedAmount).
		Float64("final_amount", amount.FinalAmount).
		Msg("benefit amounts updated")

	return amount, nil
}
