package server

import (
	handler "auction-settlement/services/settlement/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures the operational Gin routes for the settlement
// process. This surface exposes health, metrics and settlement controls
// only; the bidding API lives in a separate service.
func SetupRouter(settlementHandler *handler.SettlementHandler, registry *prometheus.Registry) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", settlementHandler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	settle := router.Group("/settlement")
	{
		settle.GET("/status", settlementHandler.StatusHandler)
		settle.POST("/run", settlementHandler.RunNowHandler)
	}

	return router
}
