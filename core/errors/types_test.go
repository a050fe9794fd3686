// ABOUTME: Tests for custom error types
// ABOUTME: Verifies error messages, type predicates, and wrapping behavior

package errors

import (
	"errors"
	"fmt"
	"testing"

	"openmedia-app-api/core/domain"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{Resource: "media", ID: "abc-123"}
	expected := "media not found: abc-123"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "q", Message: "must not be empty"}
	expected := "validation error on field 'q': must not be empty"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{MediaType: domain.MediaTypeImage, Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the underlying cause")
	}
}

func TestHTTPStatusError_Error(t *testing.T) {
	err := &HTTPStatusError{MediaType: domain.MediaTypeAudio, StatusCode: 503, Message: "service unavailable"}
	expected := "provider API returned 503 for audio: service unavailable"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIsNotFound(t *testing.T) {
	err := &NotFoundError{Resource: "media", ID: "x"}
	if !IsNotFound(err) {
		t.Error("expected IsNotFound to return true for NotFoundError")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("expected IsNotFound to return false for generic error")
	}

	// Wrapped errors are still recognized
	wrapped := fmt.Errorf("lookup failed: %w", err)
	if !IsNotFound(wrapped) {
		t.Error("expected IsNotFound to unwrap wrapped errors")
	}
}

func TestIsValidation(t *testing.T) {
	err := &ValidationError{Field: "page", Message: "must be positive"}
	if !IsValidation(err) {
		t.Error("expected IsValidation to return true for ValidationError")
	}
	if IsValidation(&NotFoundError{Resource: "media", ID: "x"}) {
		t.Error("expected IsValidation to return false for other error types")
	}
}

func TestIsNetwork(t *testing.T) {
	err := &NetworkError{MediaType: domain.MediaTypeImage, Cause: errors.New("timeout")}
	if !IsNetwork(err) {
		t.Error("expected IsNetwork to return true for NetworkError")
	}
	if IsNetwork(errors.New("timeout")) {
		t.Error("expected IsNetwork to return false for bare error")
	}
}

func TestIsHTTPStatus(t *testing.T) {
	err := &HTTPStatusError{MediaType: domain.MediaTypeImage, StatusCode: 429}
	if !IsHTTPStatus(err) {
		t.Error("expected IsHTTPStatus to return true for HTTPStatusError")
	}
	if IsHTTPStatus(&NetworkError{MediaType: domain.MediaTypeImage, Cause: errors.New("x")}) {
		t.Error("expected IsHTTPStatus to return false for NetworkError")
	}
}

func TestIsNoResult(t *testing.T) {
	err := &NoResultError{MediaType: domain.MediaTypeAudio, Query: "xyzzy"}
	if !IsNoResult(err) {
		t.Error("expected IsNoResult to return true for NoResultError")
	}
	if IsNoResult(&HTTPStatusError{MediaType: domain.MediaTypeAudio, StatusCode: 500}) {
		t.Error("expected IsNoResult to return false for HTTPStatusError")
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("base error")
	wrapped := WrapError(base, "context")

	if wrapped.Error() != "context: base error" {
		t.Errorf("unexpected wrapped message: %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("expected wrapped error to match base via errors.Is")
	}

	if WrapError(nil, "context") != nil {
		t.Error("expected WrapError(nil) to return nil")
	}
}
