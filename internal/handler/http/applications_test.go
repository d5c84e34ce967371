// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/mock"
	"github.com/openbenefits/go-benefit-vault/internal/service"
	"github.com/openbenefits/go-benefit-vault/models"
)

const testAppID = "5f64cbcc-5c21-4d05-9a2f-67c8e47b1a10"

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (
	http.Handler,
	*mock.MockApplicationService,
	*mock.MockVerificationService,
	*mock.MockBenefitService,
) {
	t.Helper()

	apps := mock.NewMockApplicationService(ctrl)
	verification := mock.NewMockVerificationService(ctrl)
	benefits := mock.NewMockBenefitService(ctrl)

	h := NewHandler(&service.Services{
		ApplicationService:  apps,
		VerificationService: verification,
		BenefitService:      benefits,
	}, logger.Nop())

	return h.Init(), apps, verification, benefits
}

func TestSubmitApplication_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, apps, _, _ := newTestHandler(t, ctrl)

	apps.EXPECT().SubmitApplication(gomock.Any(), models.SubmitApplicationRequest{
		BenefitID:       "housing",
		ApplicationData: map[string]any{"income": 42000.0},
	}).Return(models.Application{PublicID: testAppID, BenefitID: "housing"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/applications",
		strings.NewReader(`{"benefit_id":"housing","application_data":{"income":42000}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.Application
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testAppID, got.PublicID)
}

func TestSubmitApplication_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitApplication_ValidationErrorMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, apps, _, _ := newTestHandler(t, ctrl)

	apps.EXPECT().SubmitApplication(gomock.Any(), gomock.Any()).
		Return(models.Application{}, service.ErrValidationNoBenefitID)

	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetApplication_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, apps, _, _ := newTestHandler(t, ctrl)

	apps.EXPECT().GetApplication(gomock.Any(), testAppID).
		Return(models.Application{PublicID: testAppID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/"+testAppID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetApplication_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, apps, _, _ := newTestHandler(t, ctrl)

	apps.EXPECT().GetApplication(gomock.Any(), testAppID).
		Return(models.Application{}, service.ErrApplicationNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/"+testAppID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyDocuments_PassesPipelineCodeThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, verification, _ := newTestHandler(t, ctrl)

	verification.EXPECT().VerifyDocuments(gomock.Any(), models.VerifyDocumentsRequest{
		ApplicationID: testAppID,
	}).Return(models.VerifyDocumentsResult{
		IsSuccess: true,
		Code:      http.StatusMultiStatus,
		Response: models.VerifyDocumentsResponse{
			ApplicationID: testAppID,
			Status:        models.ApplicationPartiallyVerified,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/"+testAppID+"/documents/verify", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMultiStatus, rec.Code)

	var got models.VerifyDocumentsResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.ApplicationPartiallyVerified, got.Response.Status)
}

func TestVerifyDocuments_SubsetBodyIsForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, verification, _ := newTestHandler(t, ctrl)

	fileID := "a3b0f8c2-7f0c-4c9d-b2cd-1f407f6ab001"
	verification.EXPECT().VerifyDocuments(gomock.Any(), models.VerifyDocumentsRequest{
		ApplicationID:      testAppID,
		ApplicationFileIDs: []string{fileID},
	}).Return(models.VerifyDocumentsResult{Code: http.StatusOK}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/"+testAppID+"/documents/verify",
		strings.NewReader(`{"application_file_ids":["`+fileID+`"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyDocuments_InvalidFileID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, verification, _ := newTestHandler(t, ctrl)

	verification.EXPECT().VerifyDocuments(gomock.Any(), gomock.Any()).
		Return(models.VerifyDocumentsResult{}, service.ErrValidationInvalidFileID)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/"+testAppID+"/documents/verify",
		strings.NewReader(`{"application_file_ids":["nope"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckEligibility_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, benefits := newTestHandler(t, ctrl)

	benefits.EXPECT().CheckBenefitEligibility(gomock.Any(), testAppID).
		Return(models.BenefitAmount{CalculatedAmount: 350.5, FinalAmount: 300}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/applications/"+testAppID+"/eligibility", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.BenefitAmount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 300.0, got.FinalAmount)
}

func TestTraceIDHeaderIsEchoed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, apps, _, _ := newTestHandler(t, ctrl)

	apps.EXPECT().GetApplication(gomock.Any(), testAppID).
		Return(models.Application{PublicID: testAppID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/"+testAppID, nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}
