package portfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, svc *Service, maxBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc, maxBytes).RegisterRoutes(r)
	return r
}

func TestConvertEndpointReturnsHTML(t *testing.T) {
	svc := newTestService(t, &fakeExtractor{text: "resume"}, &fakeLLM{content: adaJSON})
	router := newTestRouter(t, svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", bytes.NewReader([]byte("%PDF-1.4 fake")))
	req.Header.Set("Content-Type", "application/pdf")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Content-Type"); got != "text/html" {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.HasPrefix(resp.Body.String(), "<!DOCTYPE html>") {
		t.Fatalf("expected html document, got %q", resp.Body.String())
	}
}

func TestConvertEndpointEmptyBody(t *testing.T) {
	ext := &fakeExtractor{text: "resume"}
	svc := newTestService(t, ext, &fakeLLM{content: adaJSON})
	router := newTestRouter(t, svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if got := strings.TrimSpace(resp.Body.String()); got != `{"error":"Empty PDF file received."}` {
		t.Fatalf("unexpected body %s", got)
	}
	if ext.calls != 0 {
		t.Fatalf("extractor should not run on empty body")
	}
}

func TestConvertEndpointMalformedCompletion(t *testing.T) {
	svc := newTestService(t, &fakeExtractor{text: "resume"}, &fakeLLM{content: "not json"})
	router := newTestRouter(t, svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader("%PDF"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "Parsing failed" || body.Details == "" {
		t.Fatalf("unexpected body %+v", body)
	}
	if strings.Contains(resp.Body.String(), "<html") {
		t.Fatalf("partial html leaked into error response")
	}
}

func TestConvertEndpointUpstreamFailure(t *testing.T) {
	svc := newTestService(t, &fakeExtractor{text: "resume"}, &fakeLLM{err: errors.New("rate limit reached")})
	router := newTestRouter(t, svc, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader("%PDF"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"error":"Completion failed"`) || !strings.Contains(resp.Body.String(), "rate limit reached") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestConvertEndpointTooLarge(t *testing.T) {
	ext := &fakeExtractor{text: "resume"}
	svc := newTestService(t, ext, &fakeLLM{content: adaJSON})
	router := newTestRouter(t, svc, 8)
	started := metricValue(t, "portfolio_conversion_started_total")
	failures := metricValue(t, `portfolio_conversion_failed_total{kind="TooLarge"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader("%PDF-1.4 this is too long"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "PDF file too large.") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
	if ext.calls != 0 {
		t.Fatalf("extractor should not run on oversize body")
	}
	if got := metricValue(t, "portfolio_conversion_started_total"); got != started+1 {
		t.Fatalf("started: got %d, want %d", got, started+1)
	}
	if got := metricValue(t, `portfolio_conversion_failed_total{kind="TooLarge"}`); got != failures+1 {
		t.Fatalf("failed: got %d, want %d", got, failures+1)
	}
}

func TestStylesheetEndpoint(t *testing.T) {
	router := newTestRouter(t, newTestService(t, &fakeExtractor{}, &fakeLLM{}), 0)

	req := httptest.NewRequest(http.MethodGet, "/portfolio.css", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("unexpected content type %q", got)
	}
}
