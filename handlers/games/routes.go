package games

import (
	"gamelibrary/realtime"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the catalog routes. auth guards the routes that
// write to the remote catalog.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, hub *realtime.Hub, auth gin.HandlerFunc) {
	games := r.Group("/games")
	{
		games.GET("", h.GetGames)
		games.POST("/load", h.LoadGames)
		games.POST("", auth, h.CreateGame)
	}

	categories := r.Group("/game-categories")
	{
		categories.GET("", h.GetCategories)
		categories.POST("/load", h.LoadCategories)
	}

	r.GET("/notifications/ws", NotificationsWebSocket(hub, h.logger()))
}
