// Package http is the HTTP controller layer of the benefit vault.
package http

import (
	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/service"
)

// Handler holds the service aggregate behind the application endpoints.
// Route registration lives in Init.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	return &Handler{
		services: services,
		logger:   logger,
	}
}
