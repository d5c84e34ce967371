package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/openbenefits/go-benefit-vault/internal/config"
	"github.com/openbenefits/go-benefit-vault/internal/crypto"
	"github.com/openbenefits/go-benefit-vault/internal/filestore"
	handler "github.com/openbenefits/go-benefit-vault/internal/handler/http"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/registry"
	"github.com/openbenefits/go-benefit-vault/internal/server"
	"github.com/openbenefits/go-benefit-vault/internal/service"
	"github.com/openbenefits/go-benefit-vault/internal/store"
	"github.com/openbenefits/go-benefit-vault/internal/verifier"
	"github.com/openbenefits/go-benefit-vault/internal/workers"
	"github.com/openbenefits/go-benefit-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("benefit-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	key, err := crypto.LoadKey(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading encryption key")
	}

	codec, err := crypto.NewCodec(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating codec")
	}

	db, err := store.NewConnectPostgres(cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, codec, log)

	files, err := newFileBackends(cfg.Storage.Files)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating file storage")
	}

	verifierClient := verifier.NewClient(verifier.Config{
		URL:     cfg.Verifier.URL,
		Timeout: cfg.Verifier.RequestTimeout,
	})
	registryClient := registry.NewClient(registry.Config{
		BaseURL: cfg.Registry.BaseURL,
		Timeout: cfg.Registry.RequestTimeout,
	})

	services := service.NewServices(storages, files, verifierClient, registryClient, *cfg, log)

	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	background := workers.NewWorkers(
		storages.Applications,
		services.BenefitService,
		services.VerificationService,
		cfg.Workers,
		log,
	)
	background.Run(ctx)

	srv.RunServer()
}

// newFileBackends registers every configured file store, not just the
// active one, so documents written before a backend switch stay readable.
func newFileBackends(cfg config.Files) (*filestore.Backends, error) {
	stores := make(map[string]filestore.FileStorage)

	if cfg.BinaryDataDir != "" {
		local, err := filestore.NewLocalStorage(cfg.BinaryDataDir)
		if err != nil {
			return nil, err
		}
		stores[models.StorageBackendLocal] = local
	}

	if cfg.S3Bucket != "" {
		s3, err := filestore.NewS3Storage(filestore.S3Config{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Endpoint: cfg.S3Endpoint,
		})
		if err != nil {
			return nil, err
		}
		stores[models.StorageBackendS3] = s3
	}

	active := cfg.Backend
	if active == "" {
		active = models.StorageBackendLocal
	}

	return filestore.NewBackends(active, stores)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
