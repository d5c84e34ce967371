package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/mock"
	"github.com/openbenefits/go-benefit-vault/internal/store"
	"github.com/openbenefits/go-benefit-vault/models"
)

func newTestApplicationSvc(t *testing.T, ctrl *gomock.Controller) (
	ApplicationService,
	*mock.MockApplicationRepository,
	*mock.MockApplicationFileRepository,
	*mock.MockFileStorage,
) {
	t.Helper()

	apps := mock.NewMockApplicationRepository(ctrl)
	files := mock.NewMockApplicationFileRepository(ctrl)
	storage := mock.NewMockFileStorage(ctrl)

	svc := NewApplicationService(apps, files, localBackend(t, storage), logger.Nop())

	return svc, apps, files, storage
}

func TestSubmitApplication_WithoutDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, apps, _, _ := newTestApplicationSvc(t, ctrl)
	ctx := context.Background()

	data := map[string]any{"income": 42000.0}
	apps.EXPECT().Create(ctx, models.Application{BenefitID: "housing", ApplicationData: data}).
		Return(models.Application{ID: 1, PublicID: appPublicID, BenefitID: "housing", ApplicationData: data}, nil)

	got, err := svc.SubmitApplication(ctx, models.SubmitApplicationRequest{
		BenefitID:       "housing",
		ApplicationData: data,
	})
	require.NoError(t, err)

	assert.Equal(t, appPublicID, got.PublicID)
	assert.Empty(t, got.Files)
}

func TestSubmitApplication_WithDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, apps, files, storage := newTestApplicationSvc(t, ctrl)
	ctx := context.Background()

	document := []byte(`{"type":"IncomeProof"}`)
	data := map[string]any{"income": 42000.0}

	apps.EXPECT().Create(ctx, gomock.Any()).
		Return(models.Application{ID: 1, PublicID: appPublicID, BenefitID: "housing"}, nil)
	storage.EXPECT().UploadFile(ctx, gomock.Any(), document).Return(nil)
	files.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, file models.ApplicationFile) (models.ApplicationFile, error) {
			assert.Equal(t, int64(1), file.ApplicationID)
			assert.Equal(t, "City Clerk", file.IssuerName)
			assert.Contains(t, file.FilePath, "applications/"+appPublicID+"/")
			assert.Equal(t, models.StorageBackendLocal, file.StorageBackend)
			file.ID = 10

			return file, nil
		})

	got, err := svc.SubmitApplication(ctx, models.SubmitApplicationRequest{
		BenefitID:       "housing",
		ApplicationData: data,
		Document:        base64.StdEncoding.EncodeToString(document),
		IssuerName:      "City Clerk",
	})
	require.NoError(t, err)
	require.Len(t, got.Files, 1)
	assert.Equal(t, int64(10), got.Files[0].ID)
}

func TestSubmitApplication_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestApplicationSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.SubmitApplication(ctx, models.SubmitApplicationRequest{
		ApplicationData: map[string]any{"x": 1},
	})
	assert.ErrorIs(t, err, ErrValidationNoBenefitID)

	_, err = svc.SubmitApplication(ctx, models.SubmitApplicationRequest{BenefitID: "housing"})
	assert.ErrorIs(t, err, ErrValidationNoApplicationData)

	_, err = svc.SubmitApplication(ctx, models.SubmitApplicationRequest{
		BenefitID:       "housing",
		ApplicationData: map[string]any{"x": 1},
		Document:        "???not-base64???",
	})
	assert.ErrorIs(t, err, ErrValidationInvalidDocument)
}

func TestUploadDocument_CleansUpOnRegistrationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, apps, files, storage := newTestApplicationSvc(t, ctrl)
	ctx := context.Background()

	content := []byte(`{}`)

	apps.EXPECT().GetByPublicID(ctx, appPublicID, false).
		Return(models.Application{ID: 1, PublicID: appPublicID}, nil)
	storage.EXPECT().UploadFile(ctx, gomock.Any(), content).Return(nil)
	files.EXPECT().Create(ctx, gomock.Any()).
		Return(models.ApplicationFile{}, errors.New("unique violation"))
	storage.EXPECT().DeleteFile(ctx, gomock.Any()).Return(nil)

	_, err := svc.UploadDocument(ctx, models.UploadFileRequest{
		ApplicationID: appPublicID,
		Content:       base64.StdEncoding.EncodeToString(content),
	})
	assert.Error(t, err)
}

func TestGetApplication_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, apps, _, _ := newTestApplicationSvc(t, ctrl)
	ctx := context.Background()

	apps.EXPECT().GetByPublicID(ctx, appPublicID, true).
		Return(models.Application{}, store.ErrRecordNotFound)

	_, err := svc.GetApplication(ctx, appPublicID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
