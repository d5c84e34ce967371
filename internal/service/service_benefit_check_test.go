package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/mock"
	"github.com/openbenefits/go-benefit-vault/models"
)

func newTestBenefitSvc(t *testing.T, ctrl *gomock.Controller) (
	BenefitService,
	*mock.MockApplicationRepository,
	*mock.MockRegistryClient,
) {
	t.Helper()

	apps := mock.NewMockApplicationRepository(ctrl)
	registryClient := mock.NewMockRegistryClient(ctrl)

	svc := NewBenefitService(apps, registryClient, logger.Nop())

	return svc, apps, registryClient
}

func TestCheckBenefitEligibility_EligiblePersistsAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, apps, registryClient := newTestBenefitSvc(t, ctrl)
	ctx := context.Background()

	data := map[string]any{"income": 42000.0}
	app := models.Application{ID: 1, PublicID: appPublicID, BenefitID: "housing", ApplicationData: data}
	amount := models.BenefitAmount{CalculatedAmount: 350.5, FinalAmount: 300}

	apps.EXPECT().GetByPublicID(ctx, appPublicID, false).Return(app, nil)
	registryClient.EXPECT().CheckEligibility(ctx, "housing", data).
		Return(models.EligibilityResult{Eligible: true}, nil)
	registryClient.EXPECT().CalculateAmount(ctx, "housing", data).Return(amount, nil)
	apps.EXPECT().UpdateAmounts(ctx, int64(1), amount).Return(nil)

	got, err := svc.CheckBenefitEligibility(ctx, appPublicID)
	require.NoError(t, err)
	assert.Equal(t, amount, got)
}

func TestCheckBenefitEligibility_NotEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, apps, registryClient := newTestBenefitSvc(t, ctrl)
	ctx := context.Background()

	app := models.Application{ID: 1, PublicID: appPublicID, BenefitID: "housing"}

	apps.EXPECT().GetByPublicID(ctx, appPublicID, false).Return(app, nil)
	registryClient.EXPECT().CheckEligibility(ctx, "housing", gomock.Any()).
		Return(models.EligibilityResult{Eligible: false, Reason: "income above threshold"}, nil)
	apps.EXPECT().UpdateAmounts(ctx, int64(1), models.BenefitAmount{}).Return(nil)

	_, err := svc.CheckBenefitEligibility(ctx, appPublicID)
	assert.ErrorIs(t, err, ErrNotEligible)
	assert.Contains(t, err.Error(), "income above threshold")
}

func TestCheckBenefitEligibility_RegistryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, apps, registryClient := newTestBenefitSvc(t, ctrl)
	ctx := context.Background()

	apps.EXPECT().GetByPublicID(ctx, appPublicID, false).
		Return(models.Application{ID: 1, BenefitID: "housing"}, nil)
	registryClient.EXPECT().CheckEligibility(ctx, "housing", gomock.Any()).
		Return(models.EligibilityResult{}, errors.New("registry down"))

	_, err := svc.CheckBenefitEligibility(ctx, appPublicID)
	assert.Error(t, err)
}
