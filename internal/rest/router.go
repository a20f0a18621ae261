package rest

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muhammadchandra19/mock-market-data/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/mock-market-data/pkg/logger"
	"github.com/muhammadchandra19/mock-market-data/pkg/util"
)

// RunIDHeader carries the request id in and out of the API.
const RunIDHeader = "X-Run-Id"

// NewRouter builds the HTTP API.
func NewRouter(handler *PriceHandler, health *healthcheck.HealthCheck, log logger.Interface) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), health.Middleware(), requestContext(log))

	router.GET("/test", handler.Test)

	api := router.Group("/api")
	api.GET("/prices", handler.GetPrices)

	return router
}

// requestContext tags the request context with a run id and logs the request.
func requestContext(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := util.WithRunID(c.Request.Context(), c.GetHeader(RunIDHeader))
		c.Request = c.Request.WithContext(ctx)
		c.Header(RunIDHeader, util.GetRunID(ctx))

		start := time.Now()
		c.Next()

		log.DebugContext(ctx, "request",
			logger.NewField("method", c.Request.Method),
			logger.NewField("path", c.FullPath()),
			logger.NewField("status", c.Writer.Status()),
			logger.NewField("latency", time.Since(start).String()),
		)
	}
}
