package http

import (
	"errors"
	"net/http"

	"github.com/openbenefits/go-benefit-vault/internal/registry"
	"github.com/openbenefits/go-benefit-vault/internal/service"
	"github.com/openbenefits/go-benefit-vault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoBenefitID:       http.StatusBadRequest,
	service.ErrValidationNoApplicationData: http.StatusBadRequest,
	service.ErrValidationNoApplicationID:   http.StatusBadRequest,
	service.ErrValidationInvalidFileID:     http.StatusBadRequest,
	service.ErrValidationInvalidDocument:   http.StatusBadRequest,

	service.ErrApplicationNotFound: http.StatusNotFound,
	service.ErrNoFilesToVerify:     http.StatusNotFound,
	service.ErrNotEligible:         http.StatusUnprocessableEntity,

	registry.ErrBenefitNotFound: http.StatusNotFound,
	registry.ErrRegistryFailure: http.StatusBadGateway,

	store.ErrRecordNotFound:       http.StatusNotFound,
	store.ErrUnknownEntity:        http.StatusInternalServerError,
	store.ErrEncryptingField:      http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
