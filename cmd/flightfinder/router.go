package main

import (
	"net/http"

	"flightfinder/cfg"
	"flightfinder/internal/flight"
	"flightfinder/pkg/logger"

	_ "flightfinder/cmd/flightfinder/docs" // swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func newRouter(config *cfg.Config, flightHandler *flight.FlightHandler, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if config.Observability.Enabled {
		r.Use(otelgin.Middleware(config.Observability.ServiceName))
		r.Use(TraceLoggerMiddleware(log))
	}

	flightHandler.RegisterRoutes(r)
	initSwagger(r)
	return r
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>Flight Finder API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(http.StatusOK, html)
	})
}
