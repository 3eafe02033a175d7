package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ContextKeyRequestID = "request_id"
	contextKeyLogger    = "logger"
)

// RequestID injects an X-Request-ID header into the request and response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger attaches a request-scoped logger (carrying the request ID) to
// the context and logs each request with method, path, status, and latency.
func RequestLogger(base *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLogger := base.With("request_id", c.GetString(ContextKeyRequestID))
		c.Set(contextKeyLogger, reqLogger)

		c.Next()

		reqLogger.Infow("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// GetLogger returns the request-scoped logger. Falls back to a no-op logger
// when the middleware did not run, so handlers stay safe under direct test
// invocation.
func GetLogger(c *gin.Context) *zap.SugaredLogger {
	if v, ok := c.Get(contextKeyLogger); ok {
		if l, ok := v.(*zap.SugaredLogger); ok {
			return l
		}
	}
	return zap.NewNop().Sugar()
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
