package v1

import (
	"gamelibrary/handlers/games"
	"gamelibrary/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterGamesRoutes registers the catalog routes backed by the session stores
func RegisterGamesRoutes(r *gin.RouterGroup, deps Dependencies) {
	handler := &games.Handler{
		Games:      deps.Games,
		Categories: deps.Categories,
		Logger:     deps.Logger,
	}
	games.RegisterRoutes(r, handler, deps.Hub, middleware.AuthMiddleware(deps.Config.JWTSecret))
}
