// SPDX-License-Identifier: Apache-2.0

package store

import (
	"database/sql"
	"time"
)

// columnKind tells the scanner which nullable SQL type to scan a column
// into before converting it to a plain Go value.
type columnKind int

const (
	kindInt columnKind = iota
	kindFloat
	kindText
	kindTime
)

// relationSpec declares a child entity loaded under the given record key
// when [Filter.WithRelations] is set.
type relationSpec struct {
	key        string
	entity     string
	foreignKey string
}

// tableSpec describes one persisted entity: its table, id column, the
// scannable columns and their kinds, plus declared child relations.
type tableSpec struct {
	table     string
	idColumn  string
	columns   []string
	kinds     map[string]columnKind
	relations []relationSpec
}

// tableSpecs is the registry of every entity the store knows about. Adding
// an entity means adding a migration and a spec entry; nothing else in the
// store changes.
var tableSpecs = map[string]tableSpec{
	EntityApplications: {
		table:    "applications",
		idColumn: "id",
		columns: []string{
			"id", "public_id", "benefit_id", "application_data",
			"document_verification_status", "calculated_amount",
			"final_amount", "created_at", "updated_at",
		},
		kinds: map[string]columnKind{
			"id":                           kindInt,
			"public_id":                    kindText,
			"benefit_id":                   kindText,
			"application_data":             kindText,
			"document_verification_status": kindText,
			"calculated_amount":            kindFloat,
			"final_amount":                 kindFloat,
			"created_at":                   kindTime,
			"updated_at":                   kindTime,
		},
		relations: []relationSpec{
			{key: RelationFiles, entity: EntityApplicationFiles, foreignKey: "application_id"},
		},
	},
	EntityApplicationFiles: {
		table:    "application_files",
		idColumn: "id",
		columns: []string{
			"id", "public_id", "application_id", "file_path",
			"storage_backend", "verification_status", "issuer_name",
			"created_at", "updated_at",
		},
		kinds: map[string]columnKind{
			"id":                  kindInt,
			"public_id":           kindText,
			"application_id":      kindInt,
			"file_path":           kindText,
			"storage_backend":     kindText,
			"verification_status": kindText,
			"issuer_name":         kindText,
			"created_at":          kindTime,
			"updated_at":          kindTime,
		},
	},
}

// scanTargets builds a destination slice for sql.Rows.Scan matching the
// spec's column order.
func scanTargets(spec tableSpec) []any {
	targets := make([]any, len(spec.columns))
	for i, col := range spec.columns {
		switch spec.kinds[col] {
		case kindInt:
			targets[i] = new(sql.NullInt64)
		case kindFloat:
			targets[i] = new(sql.NullFloat64)
		case kindTime:
			targets[i] = new(sql.NullTime)
		default:
			targets[i] = new(sql.NullString)
		}
	}

	return targets
}

// targetsToRecord converts scanned nullable values into a Record with plain
// Go scalars, mapping SQL NULL to nil.
func targetsToRecord(spec tableSpec, targets []any) Record {
	rec := make(Record, len(spec.columns))
	for i, col := range spec.columns {
		switch v := targets[i].(type) {
		case *sql.NullInt64:
			if v.Valid {
				rec[col] = v.Int64
			} else {
				rec[col] = nil
			}
		case *sql.NullFloat64:
			if v.Valid {
				rec[col] = v.Float64
			} else {
				rec[col] = nil
			}
		case *sql.NullTime:
			if v.Valid {
				rec[col] = v.Time
			} else {
				rec[col] = nil
			}
		case *sql.NullString:
			if v.Valid {
				rec[col] = v.String
			} else {
				rec[col] = nil
			}
		}
	}

	return rec
}

// Typed accessors for record values. Missing keys and SQL NULLs yield zero
// values, which is what the repositories want when mapping to models.

func recString(rec Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}

	return ""
}

func recInt64(rec Record, key string) int64 {
	if v, ok := rec[key].(int64); ok {
		return v
	}

	return 0
}

func recFloat(rec Record, key string) float64 {
	if v, ok := rec[key].(float64); ok {
		return v
	}

	return 0
}

func recTime(rec Record, key string) time.Time {
	if v, ok := rec[key].(time.Time); ok {
		return v
	}

	return time.Time{}
}
