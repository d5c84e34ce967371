package models

// EligibilityResult is the response of the external eligibility service.
// The service is an opaque collaborator; only the fields the backend acts on
// are modeled.
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// BenefitAmount is the response of the external benefit-calculation service.
type BenefitAmount struct {
	CalculatedAmount float64 `json:"calculated_amount"`
	FinalAmount      float64 `json:"final_amount"`
}
