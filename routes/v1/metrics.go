package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterMetricsRoutes exposes the process metrics in the Prometheus text
// and OpenMetrics formats
func RegisterMetricsRoutes(r *gin.RouterGroup) {
	handler := promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	r.GET("/metrics", gin.WrapH(handler))
}
