package v1

import (
	"log/slog"

	"gamelibrary/config"
	"gamelibrary/middleware"
	"gamelibrary/realtime"
	"gamelibrary/services"

	"github.com/gin-gonic/gin"
)

// Dependencies are the long-lived components the v1 endpoints serve
type Dependencies struct {
	Config     *config.Config
	Games      *services.CatalogStore
	Categories *services.CategoryStore
	Hub        *realtime.Hub
	Logger     *slog.Logger
}

// Register the endpoints for the v1 API
func Register(r *gin.Engine, deps Dependencies) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(deps.Config.RateLimit)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	RegisterGamesRoutes(v1, deps)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
