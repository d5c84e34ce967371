// Command rotate re-encrypts all encrypted database fields from the
// previous encryption key to the current one. Both APP_ENCRYPTION_KEY and
// APP_PREVIOUS_ENCRYPTION_KEY must be set.
package main

import (
	"context"

	"github.com/openbenefits/go-benefit-vault/internal/config"
	"github.com/openbenefits/go-benefit-vault/internal/crypto"
	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/internal/rotation"
	"github.com/openbenefits/go-benefit-vault/internal/store"
)

func main() {
	log := logger.NewLogger("benefit-vault-rotate")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	oldKey, err := crypto.LoadKey(cfg.App.PreviousEncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading previous encryption key")
	}

	newKey, err := crypto.LoadKey(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading current encryption key")
	}

	oldCodec, err := crypto.NewCodec(oldKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating codec for previous key")
	}

	newCodec, err := crypto.NewCodec(newKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating codec for current key")
	}

	db, err := store.NewConnectPostgres(cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	job := rotation.NewJob(
		store.NewSQLStore(db),
		oldCodec,
		newCodec,
		store.DefaultEncryptionMap(),
		uint64(cfg.Rotation.BatchSize),
		log,
	)

	reports, err := job.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("rotation aborted")
	}

	for _, report := range reports {
		log.Info().
			Str("entity", report.Entity).
			Int("rows_updated", report.RowsUpdated).
			Int("errors", report.Errors).
			Msg("entity rotation finished")
	}

	log.Info().Msg("key rotation completed")
}
