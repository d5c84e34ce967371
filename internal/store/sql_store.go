// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// sqlStore is the PostgreSQL implementation of [DataStore]. It builds its
// queries dynamically from the table specs with squirrel, so one
// implementation serves every registered entity.
type sqlStore struct {
	db *DB
}

// NewSQLStore returns a [DataStore] backed by the given connection pool.
func NewSQLStore(db *DB) DataStore {
	return &sqlStore{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (s *sqlStore) Create(ctx context.Context, entity string, rec Record) (Record, error) {
	log := s.db.log.With().Str("func", "sqlStore.Create").Str("entity", entity).Logger()

	spec, ok := tableSpecs[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	builder := psql.Insert(spec.table).Suffix("RETURNING " + columnList(spec))

	cols := make([]string, 0, len(rec))
	vals := make([]any, 0, len(rec))
	for _, col := range spec.columns {
		if v, present := rec[col]; present {
			cols = append(cols, col)
			vals = append(vals, v)
		}
	}
	builder = builder.Columns(cols...).Values(vals...)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	targets := scanTargets(spec)
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(targets...); err != nil {
		log.Error().Err(err).Msg("insert failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.classifyError(err))
	}

	return targetsToRecord(spec, targets), nil
}

func (s *sqlStore) Update(ctx context.Context, entity string, id int64, fields Record) (Record, error) {
	log := s.db.log.With().Str("func", "sqlStore.Update").Str("entity", entity).Logger()

	spec, ok := tableSpecs[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	builder := psql.Update(spec.table).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{spec.idColumn: id}).
		Suffix("RETURNING " + columnList(spec))

	for _, col := range spec.columns {
		if col == spec.idColumn || col == "updated_at" {
			continue
		}
		if v, present := fields[col]; present {
			builder = builder.Set(col, v)
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	targets := scanTargets(spec)
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(targets...); err != nil {
		classified := s.db.classifyError(err)
		log.Error().Err(err).Int64("id", id).Msg("update failed")

		return nil, fmt.Errorf("update %s: %w", entity, classified)
	}

	return targetsToRecord(spec, targets), nil
}

func (s *sqlStore) FindOne(ctx context.Context, entity string, filter Filter) (Record, error) {
	spec, ok := tableSpecs[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	filter.Limit = 1

	recs, err := s.find(ctx, spec, filter)
	if err != nil {
		return nil, err
	}

	if len(recs) == 0 {
		return nil, ErrRecordNotFound
	}

	rec := recs[0]
	if filter.WithRelations {
		if err = s.loadRelations(ctx, spec, rec); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

func (s *sqlStore) FindMany(ctx context.Context, entity string, filter Filter) ([]Record, error) {
	spec, ok := tableSpecs[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	recs, err := s.find(ctx, spec, filter)
	if err != nil {
		return nil, err
	}

	if filter.WithRelations {
		for _, rec := range recs {
			if err = s.loadRelations(ctx, spec, rec); err != nil {
				return nil, err
			}
		}
	}

	return recs, nil
}

func (s *sqlStore) UpdateBatch(ctx context.Context, entity string, updates []BatchUpdate) error {
	log := s.db.log.With().Str("func", "sqlStore.UpdateBatch").Str("entity", entity).Logger()

	spec, ok := tableSpecs[entity]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}

	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, upd := range updates {
		builder := psql.Update(spec.table).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{spec.idColumn: upd.ID})

		for _, col := range spec.columns {
			if col == spec.idColumn || col == "updated_at" {
				continue
			}
			if v, present := upd.Fields[col]; present {
				builder = builder.Set(col, v)
			}
		}

		query, args, buildErr := builder.ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Error().Err(err).Int64("id", upd.ID).Msg("batch update failed")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.classifyError(err))
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// find runs the shared SELECT path for FindOne and FindMany.
func (s *sqlStore) find(ctx context.Context, spec tableSpec, filter Filter) ([]Record, error) {
	builder := psql.Select(spec.columns...).
		From(spec.table).
		OrderBy(spec.idColumn + " ASC")

	if len(filter.Eq) > 0 {
		builder = builder.Where(sq.Eq(filter.Eq))
	}
	if filter.AfterID > 0 {
		builder = builder.Where(sq.Gt{spec.idColumn: filter.AfterID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, s.db.classifyError(err))
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		targets := scanTargets(spec)
		if err = rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recs = append(recs, targetsToRecord(spec, targets))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recs, nil
}

// loadRelations fetches the declared child entities of rec and nests them
// under their relation keys.
func (s *sqlStore) loadRelations(ctx context.Context, spec tableSpec, rec Record) error {
	for _, rel := range spec.relations {
		childSpec, ok := tableSpecs[rel.entity]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownEntity, rel.entity)
		}

		children, err := s.find(ctx, childSpec, Filter{
			Eq: map[string]any{rel.foreignKey: rec[spec.idColumn]},
		})
		if err != nil {
			return err
		}

		rec[rel.key] = children
	}

	return nil
}

func columnList(spec tableSpec) string {
	list := ""
	for i, col := range spec.columns {
		if i > 0 {
			list += ", "
		}
		list += col
	}

	return list
}
