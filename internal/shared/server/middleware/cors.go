package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured browser origins to post resumes. An empty list
// allows every origin. Requests from other origins are served without CORS
// headers instead of being aborted, leaving enforcement to the browser.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
		}
		allowed[strings.ToLower(strings.TrimSpace(origin))] = struct{}{}
	}
	if len(allowedOrigins) == 0 || cfg.AllowAllOrigins {
		cfg.AllowAllOrigins = true
		cfg.AllowOrigins = nil
		return cors.New(cfg)
	}

	handler := cors.New(cfg)
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := allowed[strings.ToLower(origin)]; !ok {
				c.Next()
				return
			}
		}
		handler(c)
	}
}
