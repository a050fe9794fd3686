// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"openmedia-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsNoResult(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsHTTPStatus(err) {
		// Map provider status codes to our API status codes
		var statusErr *errors.HTTPStatusError
		if stderrors.As(err, &statusErr) {
			switch {
			case statusErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("Provider service error", err)
			case statusErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by provider")
			case statusErr.StatusCode >= 400:
				return huma.Error400BadRequest("Provider request error", err)
			default:
				return huma.Error500InternalServerError("Unexpected provider response", err)
			}
		}
	}

	if errors.IsNetwork(err) {
		// No response from the provider at all
		return huma.Error503ServiceUnavailable("Provider unreachable", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
