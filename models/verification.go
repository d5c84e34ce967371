package models

// VerifyDocumentsRequest is the input of one verification-pipeline
// invocation. ApplicationFileIDs optionally narrows the run to an explicit
// subset of the application's files; when empty, every file is verified.
type VerifyDocumentsRequest struct {
	ApplicationID      string   `json:"application_id"`
	ApplicationFileIDs []string `json:"application_file_ids,omitempty"`
}

// VerificationResult is the transient per-file outcome of a single
// verification run. It is reduced into the persisted per-file and
// per-application statuses and echoed back in the invocation response.
type VerificationResult struct {
	FileID   string `json:"id"`
	FilePath string `json:"filePath"`
	Valid    bool   `json:"-"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// VerifyDocumentsResult is the full outcome of one pipeline invocation.
type VerifyDocumentsResult struct {
	IsSuccess bool                    `json:"isSuccess"`
	Code      int                     `json:"code"`
	Response  VerifyDocumentsResponse `json:"response"`
}

// VerifyDocumentsResponse is the payload part of [VerifyDocumentsResult].
type VerifyDocumentsResponse struct {
	ApplicationID string               `json:"applicationId"`
	Status        string               `json:"status"`
	Message       string               `json:"message"`
	Files         []VerificationResult `json:"files"`
}

// UnknownVerificationError is the fallback message used when the verifier
// rejected a credential without saying why.
const UnknownVerificationError = "Unknown error"

// VerifierOutcome is the normalized result of one external verifier call,
// constructed immediately after the HTTP exchange so downstream code never
// probes optional response fields.
type VerifierOutcome struct {
	// Valid reports whether the verifier accepted the credential.
	Valid bool

	// Message is the verifier's human-readable summary. For invalid
	// credentials it aggregates the individual error texts, falling back
	// to "Unknown error" when the verifier reported none.
	Message string

	// Errors carries the structured error list for invalid credentials.
	Errors []VerificationError
}
