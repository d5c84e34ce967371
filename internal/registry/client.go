// Package registry is the HTTP client for the benefit registry service,
// which owns eligibility rules and amount calculation.
package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/openbenefits/go-benefit-vault/models"
)

//go:generate mockgen -source=client.go -destination=../mock/registry_mock.go -package=mock -mock_names=Client=MockRegistryClient

var (
	ErrBenefitNotFound = errors.New("benefit not found")
	ErrRegistryFailure = errors.New("benefit registry failure")
)

// Client asks the registry whether an application is eligible for its
// benefit and what amount it yields.
type Client interface {
	CheckEligibility(ctx context.Context, benefitID string, applicationData map[string]any) (models.EligibilityResult, error)
	CalculateAmount(ctx context.Context, benefitID string, applicationData map[string]any) (models.BenefitAmount, error)
}

// Config carries the registry endpoint settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client
}

// NewClient builds a registry [Client] for the given endpoint.
func NewClient(cfg Config) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpClient{client: cli}
}

type evaluationRequest struct {
	BenefitID       string         `json:"benefitId"`
	ApplicationData map[string]any `json:"applicationData"`
}

func (h *httpClient) CheckEligibility(ctx context.Context, benefitID string, applicationData map[string]any) (models.EligibilityResult, error) {
	var result models.EligibilityResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(evaluationRequest{BenefitID: benefitID, ApplicationData: applicationData}).
		SetResult(&result).
		Post("/api/eligibility")
	if err != nil {
		return models.EligibilityResult{}, fmt.Errorf("eligibility request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EligibilityResult{}, err
	}

	return result, nil
}

func (h *httpClient) CalculateAmount(ctx context.Context, benefitID string, applicationData map[string]any) (models.BenefitAmount, error) {
	var result models.BenefitAmount

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(evaluationRequest{BenefitID: benefitID, ApplicationData: applicationData}).
		SetResult(&result).
		Post("/api/amount")
	if err != nil {
		return models.BenefitAmount{}, fmt.Errorf("amount request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BenefitAmount{}, err
	}

	return result, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrBenefitNotFound, body)
	}

	return fmt.Errorf("%w: http %d: %s", ErrRegistryFailure, resp.StatusCode(), body)
}
