// SPDX-License-Identifier: Apache-2.0

// Package verifier is the HTTP client for the external credential
// verification service.
package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/openbenefits/go-benefit-vault/models"
)

//go:generate mockgen -source=client.go -destination=../mock/verifier_mock.go -package=mock -mock_names=Client=MockVerifierClient

// Client verifies one credential document against the external verifier.
// A returned error means the call itself failed (transport, timeout); a
// rejected credential is a successful call with Valid=false.
type Client interface {
	VerifyCredential(ctx context.Context, credential json.RawMessage, issuerName string) (models.VerifierOutcome, error)
}

// Config carries the verifier endpoint settings.
type Config struct {
	URL     string
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client
}

// NewClient builds a verifier [Client] for the given endpoint.
func NewClient(cfg Config) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpClient{client: cli}
}

// verifyRequest is the wire format the verifier expects: the credential as
// parsed JSON plus the verification options.
type verifyRequest struct {
	Credential json.RawMessage `json:"credential"`
	Config     verifyConfig    `json:"config"`
}

type verifyConfig struct {
	Method     string `json:"method"`
	IssuerName string `json:"issuerName,omitempty"`
}

// verifyResponse is the verifier's answer in both the accept and reject
// shapes.
type verifyResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message,omitempty"`
	Errors  []models.VerificationError `json:"errors,omitempty"`
}

func (h *httpClient) VerifyCredential(ctx context.Context, credential json.RawMessage, issuerName string) (models.VerifierOutcome, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(verifyRequest{
			Credential: credential,
			Config:     verifyConfig{Method: "online", IssuerName: issuerName},
		}).
		Post("/verify")
	if err != nil {
		return models.VerifierOutcome{}, fmt.Errorf("verify request: %w", err)
	}

	return outcomeFromResponse(resp), nil
}

// outcomeFromResponse normalizes whatever the verifier sent into a
// [models.VerifierOutcome]. An HTTP error status or an unparseable body
// counts as a rejection with whatever detail could be salvaged.
func outcomeFromResponse(resp *resty.Response) models.VerifierOutcome {
	var body verifyResponse
	parseErr := json.Unmarshal(resp.Body(), &body)

	parsed := resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices && parseErr == nil
	if parsed && body.Success {
		return models.VerifierOutcome{Valid: true, Message: body.Message}
	}

	outcome := models.VerifierOutcome{Message: rejectionMessage(body), Errors: body.Errors}
	if len(outcome.Errors) == 0 {
		outcome.Errors = []models.VerificationError{{
			Error: outcome.Message,
			Raw:   strings.TrimSpace(string(resp.Body())),
		}}
	}

	return outcome
}

// rejectionMessage builds the human-readable summary of a rejection from the
// verifier's error list, joined in response order. The free-form message
// field is only consulted when the list is empty.
func rejectionMessage(body verifyResponse) string {
	texts := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		if e.Error != "" {
			texts = append(texts, e.Error)
		}
	}

	switch {
	case len(texts) > 0:
		return strings.Join(texts, "; ")
	case body.Message != "":
		return body.Message
	default:
		return models.UnknownVerificationError
	}
}
