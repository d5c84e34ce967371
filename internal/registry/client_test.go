package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEligibility_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/eligibility", r.URL.Path)

		var req evaluationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "housing", req.BenefitID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"eligible": true}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	got, err := c.CheckEligibility(context.Background(), "housing", map[string]any{"income": 42000})

	require.NoError(t, err)
	assert.True(t, got.Eligible)
}

func TestCheckEligibility_NotEligible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"eligible": false, "reason": "income above threshold"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	got, err := c.CheckEligibility(context.Background(), "housing", nil)

	require.NoError(t, err)
	assert.False(t, got.Eligible)
	assert.Equal(t, "income above threshold", got.Reason)
}

func TestCalculateAmount_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/amount", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"calculated_amount": 350.5, "final_amount": 300}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	got, err := c.CalculateAmount(context.Background(), "housing", nil)

	require.NoError(t, err)
	assert.Equal(t, 350.5, got.CalculatedAmount)
	assert.Equal(t, 300.0, got.FinalAmount)
}

func TestCheckEligibility_UnknownBenefit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such benefit"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.CheckEligibility(context.Background(), "ghost", nil)

	assert.ErrorIs(t, err, ErrBenefitNotFound)
}

func TestCalculateAmount_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.CalculateAmount(context.Background(), "housing", nil)

	assert.ErrorIs(t, err, ErrRegistryFailure)
}
