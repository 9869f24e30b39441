package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"bfhl-server/internal/answer"
	"bfhl-server/internal/config"
)

const testIdentifier = "admin@example.com"

type stubProvider struct {
	configured bool
	reply      string
	err        error
	calls      int
}

func (s *stubProvider) Configured() bool {
	return s.configured
}

func (s *stubProvider) OneWord(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type envelope struct {
	Success    bool            `json:"success"`
	Identifier string          `json:"identifier"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func newTestRouter(t *testing.T, provider answer.Provider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Identifier: testIdentifier,
		Gemini:     config.GeminiConfig{MaxRetries: 0, BackoffBaseMillis: 0},
		Limits: config.LimitsConfig{
			MaxFibonacciTerms: 92,
			MaxArrayLength:    5,
			MaxQuestionLength: 100,
			MaxBodyBytes:      1024,
		},
		Logging: config.LoggingConfig{Level: "error"},
	}

	table, err := answer.LoadFallbackTable()
	if err != nil {
		t.Fatalf("load fallback: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := answer.NewResolver(cfg, provider, table, logger)
	bfhlHandler := NewBFHLHandler(cfg, resolver, logger)
	return NewRouter(cfg, logger, bfhlHandler)
}

func postBFHL(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) envelope {
	t.Helper()
	var payload envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v (%s)", err, resp.Body.String())
	}
	return payload
}

func TestBFHLFibonacci(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	resp := postBFHL(router, `{"fibonacci":7}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	payload := decodeEnvelope(t, resp)
	if !payload.Success || payload.Identifier != testIdentifier {
		t.Fatalf("unexpected envelope: %+v", payload)
	}
	if string(payload.Data) != "[0,1,1,2,3,5,8]" {
		t.Fatalf("unexpected data: %s", payload.Data)
	}
}

func TestBFHLFibonacciZero(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	resp := postBFHL(router, `{"fibonacci":0}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if string(decodeEnvelope(t, resp).Data) != "[]" {
		t.Fatalf("expected empty sequence")
	}
}

func TestBFHLFibonacciOutOfRange(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	for _, body := range []string{`{"fibonacci":-1}`, `{"fibonacci":93}`} {
		resp := postBFHL(router, body)
		if resp.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", body, resp.Code)
		}
	}
}

func TestBFHLFibonacciNotInteger(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	for _, body := range []string{`{"fibonacci":5.5}`, `{"fibonacci":"7"}`, `{"fibonacci":null}`} {
		resp := postBFHL(router, body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, resp.Code)
		}
	}
}

func TestBFHLPrime(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	resp := postBFHL(router, `{"prime":[2,4,7,9,11]}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if string(decodeEnvelope(t, resp).Data) != "[2,7,11]" {
		t.Fatalf("unexpected data: %s", decodeEnvelope(t, resp).Data)
	}
}

func TestBFHLLcmAndHcf(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	resp := postBFHL(router, `{"lcm":[12,18,24]}`)
	if resp.Code != http.StatusOK || string(decodeEnvelope(t, resp).Data) != "72" {
		t.Fatalf("lcm: expected 72, got %d %s", resp.Code, resp.Body.String())
	}

	resp = postBFHL(router, `{"hcf":[24,36,60]}`)
	if resp.Code != http.StatusOK || string(decodeEnvelope(t, resp).Data) != "12" {
		t.Fatalf("hcf: expected 12, got %d %s", resp.Code, resp.Body.String())
	}
}

func TestBFHLArrayValidation(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	tests := []struct {
		body   string
		status int
	}{
		{`{"prime":[]}`, http.StatusBadRequest},
		{`{"prime":5}`, http.StatusBadRequest},
		{`{"prime":[1,"2"]}`, http.StatusBadRequest},
		{`{"prime":[1,2.5]}`, http.StatusBadRequest},
		{`{"lcm":[1,2,3,4,5,6]}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		resp := postBFHL(router, tc.body)
		if resp.Code != tc.status {
			t.Errorf("%s: expected %d, got %d", tc.body, tc.status, resp.Code)
		}
		payload := decodeEnvelope(t, resp)
		if payload.Success || payload.Error == "" {
			t.Errorf("%s: expected error envelope, got %+v", tc.body, payload)
		}
	}
}

func TestBFHLSingleKeyInvariant(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	for _, body := range []string{`{}`, `{"x":1}`, `{"fibonacci":1,"prime":[2]}`, `[1,2]`, `"text"`, `not json`} {
		resp := postBFHL(router, body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, resp.Code)
			continue
		}
		payload := decodeEnvelope(t, resp)
		if payload.Success {
			t.Errorf("%s: expected success=false", body)
		}
	}

	// 허용 키 집합이 오류 메시지에 명시된다
	payload := decodeEnvelope(t, postBFHL(router, `{"x":1}`))
	for _, key := range []string{"fibonacci", "prime", "lcm", "hcf", "AI"} {
		if !strings.Contains(payload.Error, key) {
			t.Fatalf("error message %q missing key %s", payload.Error, key)
		}
	}
}

func TestBFHLUnsupportedMediaType(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(`{"fibonacci":7}`))
	req.Header.Set("Content-Type", "text/plain")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", resp.Code)
	}
}

func TestBFHLPayloadTooLarge(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	big := `{"AI":"` + strings.Repeat("a", 2048) + `"}`
	resp := postBFHL(router, big)
	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}

func TestBFHLAIProviderAnswer(t *testing.T) {
	provider := &stubProvider{configured: true, reply: "Jupiter!\n"}
	router := newTestRouter(t, provider)

	resp := postBFHL(router, `{"AI":"What is the largest planet?"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if string(decodeEnvelope(t, resp).Data) != `"Jupiter"` {
		t.Fatalf("unexpected data: %s", decodeEnvelope(t, resp).Data)
	}
}

func TestBFHLAIFallbackWhenUnavailable(t *testing.T) {
	provider := &stubProvider{configured: false}
	router := newTestRouter(t, provider)

	resp := postBFHL(router, `{"AI":"What is the capital city of Maharashtra?"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if string(decodeEnvelope(t, resp).Data) != `"Mumbai"` {
		t.Fatalf("unexpected data: %s", decodeEnvelope(t, resp).Data)
	}
}

func TestBFHLAIUnavailableWithoutFallback(t *testing.T) {
	provider := &stubProvider{configured: false}
	router := newTestRouter(t, provider)

	resp := postBFHL(router, `{"AI":"question nobody canned"}`)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestBFHLAIRejectsNonString(t *testing.T) {
	router := newTestRouter(t, &stubProvider{configured: true})

	for _, body := range []string{`{"AI":42}`, `{"AI":["q"]}`, `{"AI":""}`} {
		resp := postBFHL(router, body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, resp.Code)
		}
	}
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload HealthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Success || payload.Identifier != testIdentifier {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
