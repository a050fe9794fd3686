// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"

	"openmedia-app-api/core/domain"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NetworkError represents a request that produced no HTTP response at all
type NetworkError struct {
	MediaType domain.MediaType
	Cause     error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error searching %s: %v", e.MediaType, e.Cause)
}

// Unwrap exposes the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// HTTPStatusError represents a 4xx/5xx response from the provider API
type HTTPStatusError struct {
	MediaType  domain.MediaType
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("provider API returned %d for %s: %s", e.StatusCode, e.MediaType, e.Message)
}

// NoResultError represents a search that succeeded but matched nothing.
// This is a semantic error, not a transport one.
type NoResultError struct {
	MediaType domain.MediaType
	Query     string
}

// Error implements the error interface
func (e *NoResultError) Error() string {
	return fmt.Sprintf("no %s results for %q", e.MediaType, e.Query)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsHTTPStatus checks if an error is an HTTPStatusError
func IsHTTPStatus(err error) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr)
}

// IsNoResult checks if an error is a NoResultError
func IsNoResult(err error) bool {
	var noResultErr *NoResultError
	return errors.As(err, &noResultErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
