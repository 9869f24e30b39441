package answer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/genai"

	"bfhl-server/internal/gemini"
	"bfhl-server/internal/httperror"
)

func providerError(code int) error {
	return fmt.Errorf("generate content: %w", genai.APIError{Code: code, Message: "upstream"})
}

func TestClassifyStatusTable(t *testing.T) {
	tests := []struct {
		status    int
		kind      httperror.Kind
		retryable bool
	}{
		{429, httperror.KindRateLimited, true},
		{401, httperror.KindServiceUnavailable, false},
		{403, httperror.KindServiceUnavailable, false},
		{500, httperror.KindBadGateway, true},
		{502, httperror.KindBadGateway, true},
		{503, httperror.KindBadGateway, true},
		{404, httperror.KindBadGateway, false},
		{400, httperror.KindBadGateway, false},
	}
	for _, tc := range tests {
		apiErr, retryable := Classify(providerError(tc.status))
		if apiErr == nil || apiErr.Kind != tc.kind {
			t.Errorf("status %d: kind %v, want %v", tc.status, apiErr, tc.kind)
			continue
		}
		if retryable != tc.retryable {
			t.Errorf("status %d: retryable %v, want %v", tc.status, retryable, tc.retryable)
		}
	}
}

func TestClassifyMissingKey(t *testing.T) {
	apiErr, retryable := Classify(gemini.ErrMissingAPIKey)
	if apiErr == nil || apiErr.Kind != httperror.KindServiceUnavailable || retryable {
		t.Fatalf("expected non-retryable 503, got %+v retryable=%v", apiErr, retryable)
	}
}

func TestClassifyTransportFailure(t *testing.T) {
	apiErr, retryable := Classify(errors.New("connection refused"))
	if apiErr == nil || apiErr.Kind != httperror.KindBadGateway || !retryable {
		t.Fatalf("expected retryable 502, got %+v retryable=%v", apiErr, retryable)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", apiErr.Status)
	}
}

func TestClassifyCanceled(t *testing.T) {
	apiErr, retryable := Classify(context.Canceled)
	if apiErr == nil || retryable {
		t.Fatalf("expected non-retryable error for canceled context")
	}
}

func TestClassifyNil(t *testing.T) {
	if apiErr, _ := Classify(nil); apiErr != nil {
		t.Fatalf("expected nil for nil input")
	}
}
