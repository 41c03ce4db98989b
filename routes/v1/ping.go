package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Liveness probe
// @Tags Support
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", ping)
}
