package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"homevest_backend/internal/database"
	"homevest_backend/internal/logger"
)

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by an upstream proxy.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// LoggingMiddleware logs one line per request with latency and status.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.CtxInfo(c.Request.Context(), "request completed",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// CORSMiddleware allows the frontend origin set. Kept permissive; the API
// carries no cookies for cross-origin callers.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, X-Data-Mode")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// DataModeMiddleware probes database reachability once, stamps the result
// into the request context, and advertises it in the X-Data-Mode header.
// Repository calls downstream reuse the cached probe instead of re-pinging,
// so the header always matches the data source actually used.
func DataModeMiddleware(health *database.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := health.WithProbe(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)

		if health.DemoMode(ctx) {
			c.Header("X-Data-Mode", "demo")
		} else {
			c.Header("X-Data-Mode", "live")
		}
		c.Next()
	}
}
