// SPDX-License-Identifier: Apache-2.0

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/openbenefits/go-benefit-vault/internal/logger"
	"github.com/openbenefits/go-benefit-vault/migrations"
)

// DB wraps the SQL connection pool together with the error classifier and
// a logger, so that every store built on top of it reports failures the
// same way.
type DB struct {
	*sql.DB
	errorClassificator func(err error) error
	log                *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection pool using the pgx
// stdlib driver and verifies it with a ping.
func NewConnectPostgres(dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	return &DB{
		DB:                 conn,
		errorClassificator: postgresError,
		log:                log,
	}, nil
}

// Migrate runs the embedded goose migrations against the pool.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// classifyError normalizes a raw driver error into the store's sentinel
// vocabulary where possible, falling back to the raw error.
func (db *DB) classifyError(err error) error {
	if err == nil {
		return nil
	}

	if classified := db.errorClassificator(err); classified != nil {
		return classified
	}

	return err
}

// postgresError maps PostgreSQL error codes onto store sentinels. Unmapped
// codes pass through as nil so the caller keeps the original error.
func postgresError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", ErrExecutingQuery, pgErr.Detail)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrExecutingQuery, pgErr.Detail)
	case pgerrcode.ConnectionException, pgerrcode.ConnectionFailure:
		return fmt.Errorf("%w: connection failure", ErrExecutingQuery)
	}

	return nil
}
