package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/applications", func(r chi.Router) {
		r.Post("/", h.submitApplication)
		r.Get("/{applicationID}", h.getApplication)
		r.Post("/{applicationID}/documents", h.uploadDocument)
		r.Post("/{applicationID}/documents/verify", h.verifyDocuments)
		r.Post("/{applicationID}/eligibility", h.checkEligibility)
	})

	return router
}
