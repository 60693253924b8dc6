package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-portfolio/internal/portfolio"
	"resume-portfolio/internal/shared/config"
	"resume-portfolio/internal/shared/metrics"
	"resume-portfolio/internal/shared/server/middleware"
	"resume-portfolio/internal/shared/server/respond"
)

// RouterDeps carries the handlers mounted on the router.
type RouterDeps struct {
	Config           config.Config
	PortfolioHandler *portfolio.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	r.NoMethod(portfolio.MethodNotAllowed)

	r.GET("/api/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	if deps.PortfolioHandler != nil {
		deps.PortfolioHandler.RegisterRoutes(r)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
