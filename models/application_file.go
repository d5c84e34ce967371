package models

import "time"

// Storage backends an application file can be declared against. The pipeline
// resolves the backend per file, so one application may mix both.
const (
	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"
)

// Per-file verification states persisted inside
// [ApplicationFile.VerificationStatus].
const (
	FileStatusVerified   = "Verified"
	FileStatusUnverified = "Unverified"
)

// ApplicationFile is one submitted document belonging to an application.
// Created on submission or direct upload, mutated only by the verification
// pipeline, never deleted by the core.
type ApplicationFile struct {
	ID            int64  `json:"-"`
	PublicID      string `json:"file_id"`
	ApplicationID int64  `json:"-"`

	// FilePath is the storage key under which the raw content lives.
	FilePath string `json:"file_path"`

	// StorageBackend declares which file storage holds the content.
	StorageBackend string `json:"storage_backend"`

	// VerificationStatus is the persisted outcome of the last verification
	// attempt for this file, nil until verification has been attempted.
	VerificationStatus *FileVerificationStatus `json:"verification_status,omitempty"`

	// IssuerName is the credential issuer declared for this document.
	// Encrypted transparently at rest. When blank, the pipeline falls back
	// to the configured default issuer.
	IssuerName string `json:"issuer_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileVerificationStatus is the JSON shape stored verbatim on the
// application_files row:
//
//	{"status": "Verified"}
//	{"status": "Unverified", "verificationErrors": [{"error": ..., "raw": ...}]}
type FileVerificationStatus struct {
	Status             string              `json:"status"`
	VerificationErrors []VerificationError `json:"verificationErrors,omitempty"`
}

// VerificationError is one structured error reported by the external
// verifier (or synthesized from a failed call), kept with its raw payload.
type VerificationError struct {
	Error string `json:"error"`
	Raw   any    `json:"raw,omitempty"`
}
