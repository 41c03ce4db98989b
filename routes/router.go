package routes

import (
	v1 "gamelibrary/routes/v1"

	_ "gamelibrary/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// ServiceName identifies this process in traces
const ServiceName = "gamelibrary"

// NewRouter builds the HTTP surface presentation clients talk to
func NewRouter(deps v1.Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(ServiceName))

	v1.Register(r, deps)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
