package respond

import (
	"github.com/gin-gonic/gin"

	"resume-portfolio/internal/shared/telemetry"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error logs the failure and aborts with a JSON error body.
func Error(c *gin.Context, status int, summary, details string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"error":      summary,
		"details":    details,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   summary,
		Details: details,
	})
}
