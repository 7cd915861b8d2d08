package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reactivedemo/demo/backend/go-services/pkg/logger"
	"github.com/reactivedemo/demo/backend/go-services/pkg/metrics"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "requestID"
)

// RequestID accepts a well-formed incoming X-Request-Id or generates a UUID,
// stores it on the context and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger writes one access line per request through pkg/logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		line := "%s %s %d %s id=%s"
		args := []interface{}{c.Request.Method, c.Request.URL.Path, status, time.Since(start).Round(time.Microsecond), GetRequestID(c)}
		switch {
		case status >= 500:
			logger.Errorf(line, args...)
		case status >= 400:
			logger.Warnf(line, args...)
		default:
			logger.Infof(line, args...)
		}
	}
}

// HTTPMetrics records request counts and latency labelled by route template.
// Unmatched routes share the "unmatched" label to keep cardinality bounded.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// CORS sets permissive headers and answers preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, "+RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, "+RequestIDHeader)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}
