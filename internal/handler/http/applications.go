package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/models"
)

func (h *Handler) submitApplication(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SubmitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submitApplication").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	app, err := h.services.ApplicationService.SubmitApplication(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitApplication").Msg("error submitting application")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, app)
}

func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	app, err := h.services.ApplicationService.GetApplication(r.Context(), chi.URLParam(r, "applicationID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getApplication").Msg("error getting application")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, app)
}

func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UploadFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.uploadDocument").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	req.ApplicationID = chi.URLParam(r, "applicationID")

	file, err := h.services.ApplicationService.UploadDocument(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadDocument").Msg("error uploading document")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, file)
}

func (h *Handler) verifyDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerifyDocumentsRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Str("func", "*Handler.verifyDocuments").Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}
	req.ApplicationID = chi.URLParam(r, "applicationID")

	result, err := h.services.VerificationService.VerifyDocuments(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyDocuments").Msg("error verifying documents")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	// the pipeline carries its own HTTP code: 200, 207 or 422
	writeJSON(w, result.Code, result)
}

func (h *Handler) checkEligibility(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	amount, err := h.services.BenefitService.CheckBenefitEligibility(r.Context(), chi.URLParam(r, "applicationID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.checkEligibility").Msg("error checking eligibility")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, amount)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
