package models

import "time"

// Aggregate document-verification states persisted on an application.
// The empty string means verification has not been run yet.
const (
	ApplicationVerified          = "verified"
	ApplicationPartiallyVerified = "partially_verified"
	ApplicationUnverified        = "unverified"
)

// Application is one benefit application submitted by an applicant.
// ApplicationData is the sensitive payload: it is stored encrypted at rest
// and is only ever seen in plaintext by code running behind the encrypted
// data store.
type Application struct {
	// ID is the server-assigned primary key. It is the cursor used by the
	// key-rotation job, so it must stay monotonically increasing.
	ID int64 `json:"-"`

	// PublicID is the externally visible identifier of the application.
	PublicID string `json:"application_id"`

	// BenefitID references the benefit scheme in the external registry.
	BenefitID string `json:"benefit_id"`

	// ApplicationData is the applicant-supplied field map (income, household
	// size, free-form answers). Encrypted transparently at rest.
	ApplicationData map[string]any `json:"application_data"`

	// DocumentVerificationStatus is the aggregate outcome of the last
	// document-verification run: verified, partially_verified, unverified,
	// or empty when verification has never run.
	DocumentVerificationStatus string `json:"document_verification_status,omitempty"`

	// CalculatedAmount and FinalAmount are the benefit amounts produced by
	// the external eligibility/calculation services.
	CalculatedAmount float64 `json:"calculated_amount,omitempty"`
	FinalAmount      float64 `json:"final_amount,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Files are the documents attached to this application. Populated only
	// when the row is fetched with its relations.
	Files []ApplicationFile `json:"files,omitempty"`
}
