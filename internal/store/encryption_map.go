// SPDX-License-Identifier: Apache-2.0

package store

// Entity and relation names used across the store layer.
const (
	EntityApplications     = "applications"
	EntityApplicationFiles = "application_files"

	RelationFiles = "files"
)

// EncryptionMap declares, per entity, which fields hold sensitive data and
// must be encrypted at rest. Everything not listed here is stored in
// plaintext.
type EncryptionMap map[string][]string

// RelationMap declares, per entity, which record keys hold nested child
// records and the entity those children belong to. The encrypted store uses
// it to locate children in a loaded record and decrypt them with the
// correct field list. Relations are declared statically here rather than
// discovered by probing record values, so an unmapped nested structure is
// simply left alone.
type RelationMap map[string]map[string]string

// DefaultEncryptionMap covers applicant-supplied data: the free-form
// application payload and the document issuer name.
func DefaultEncryptionMap() EncryptionMap {
	return EncryptionMap{
		EntityApplications:     {"application_data"},
		EntityApplicationFiles: {"issuer_name"},
	}
}

// DefaultRelationMap mirrors the relations declared in the table specs.
func DefaultRelationMap() RelationMap {
	return RelationMap{
		EntityApplications: {
			RelationFiles: EntityApplicationFiles,
		},
	}
}
