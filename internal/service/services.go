package service

import (
	"github.com/openbenefits/go-benefit-vault/internal/config"
	"github.com/openbenefits/go-benefit-vault/internal/filestore"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/registry"
	"github.com/openbenefits/go-benefit-vault/internal/store"
	"github.com/openbenefits/go-benefit-vault/internal/verifier"
)

type Services struct {
	ApplicationService  ApplicationService
	VerificationService VerificationService
	BenefitService      BenefitService
}

func NewServices(
	storages *store.Storages,
	files *filestore.Backends,
	verifierClient verifier.Client,
	registryClient registry.Client,
	cfg config.StructuredConfig,
	log *logger.Logger,
) *Services {
	return &Services{
		ApplicationService:  NewApplicationService(storages.Applications, storages.ApplicationFiles, files, log),
		VerificationService: NewVerificationService(storages.Applications, storages.ApplicationFiles, files, verifierClient, cfg.App, log),
		BenefitService:      NewBenefitService(storages.Applications, registryClient, log),
	}
}
