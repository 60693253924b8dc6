package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-portfolio/internal/shared/server/respond"
	"resume-portfolio/internal/shared/telemetry"
)

// Recovery turns a panic into a classified 500 JSON response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				telemetry.Error("panic", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      rec,
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				})
				c.Set("errorKind", "TemplatingDefect")
				respond.Error(c, http.StatusInternalServerError, "Rendering failed", fmt.Sprint(rec))
			}
		}()
		c.Next()
	}
}
