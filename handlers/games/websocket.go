package games

import (
	"log/slog"
	"net/http"

	"gamelibrary/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotificationsWebSocket streams notification intents to a presentation client
func NotificationsWebSocket(hub *realtime.Hub, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("WebSocket upgrade error", "error", err)
			return
		}

		hub.RegisterClient(conn)
		logger.Debug("WebSocket client connected", "clients", hub.ClientCount())
		defer func() {
			hub.UnregisterClient(conn)
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				logger.Debug("WebSocket closed", "error", err)
				break
			}
		}
	}
}
