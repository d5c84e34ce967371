package models

// SubmitApplicationRequest is the inbound payload for creating a new benefit
// application. Document, when present, is the base64-encoded raw content of
// an attached credential; it is written to file storage, never to the
// database.
type SubmitApplicationRequest struct {
	BenefitID       string         `json:"benefit_id"`
	ApplicationData map[string]any `json:"application_data"`
	Document        string         `json:"document,omitempty"`
	IssuerName      string         `json:"issuer_name,omitempty"`
}

// UploadFileRequest attaches one more document to an existing application.
type UploadFileRequest struct {
	ApplicationID string `json:"application_id"`
	Content       string `json:"content"`
	IssuerName    string `json:"issuer_name,omitempty"`
}
