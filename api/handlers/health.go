// ABOUTME: Health handlers reporting service liveness and provider reachability
// ABOUTME: Used by deployment probes and for diagnosing provider outages

package handlers

import (
	"context"
	"net/http"
	"time"

	"openmedia-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	httpClient  interfaces.HTTPClient
	providerURL string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(httpClient interfaces.HTTPClient, providerURL string) *HealthHandler {
	return &HealthHandler{
		httpClient:  httpClient,
		providerURL: providerURL,
	}
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service liveness",
		Tags:        []string{"Health"},
	}, h.Health)

	huma.Register(api, huma.Operation{
		OperationID: "providerHealthCheck",
		Method:      http.MethodGet,
		Path:        "/health/provider",
		Summary:     "Provider reachability",
		Description: "Checks whether the upstream media provider responds",
		Tags:        []string{"Health"},
	}, h.ProviderHealth)
}

// HealthOutput defines the output for the liveness check
type HealthOutput struct {
	Body struct {
		Status string `json:"status" doc:"Always 'ok' when the service is up"`
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	output := &HealthOutput{}
	output.Body.Status = "ok"
	return output, nil
}

// ProviderHealthOutput defines the output for the provider check
type ProviderHealthOutput struct {
	Body struct {
		Provider   string `json:"provider" doc:"Provider base URL"`
		Reachable  bool   `json:"reachable" doc:"Whether the provider responded"`
		StatusCode int    `json:"status_code,omitempty" doc:"Provider HTTP status, if it responded"`
	}
}

// ProviderHealth handles the GET /health/provider endpoint
func (h *HealthHandler) ProviderHealth(ctx context.Context, _ *struct{}) (*ProviderHealthOutput, error) {
	output := &ProviderHealthOutput{}
	output.Body.Provider = h.providerURL

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := h.httpClient.Get(ctx, h.providerURL)
	if err != nil {
		return output, nil
	}
	defer resp.Body().Close()

	output.Body.Reachable = true
	output.Body.StatusCode = resp.StatusCode()
	return output, nil
}
