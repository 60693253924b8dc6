package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-portfolio/internal/shared/telemetry"
)

func TestRecoveryReturnsClassifiedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := telemetry.SetOutput(io.Discard)
	defer telemetry.SetOutput(prev)

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.POST("/boom", func(c *gin.Context) {
		panic("range over missing projects")
	})

	req := httptest.NewRequest(http.MethodPost, "/boom", nil)
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
		t.Fatalf("decode body %q: %v", resp.Body.String(), err)
	}
	if body.Error != "Rendering failed" {
		t.Fatalf("unexpected error summary %q", body.Error)
	}
	if body.Details == "" {
		t.Fatalf("expected panic details")
	}
}
