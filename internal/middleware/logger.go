package middleware

import (
	"net/http"
	"time"

	"socialnet/backend/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger writes one line per request. Server errors are logged at error level together
// with the errors handlers attached to the context.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if userID, ok := c.Get(auth.TokenUserIDKey); ok {
			fields = append(fields, zap.Any("token_user_id", userID))
		}

		switch {
		case status >= http.StatusInternalServerError:
			fields = append(fields, zap.String("errors", c.Errors.String()))
			log.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			log.Info("request rejected", fields...)
		default:
			log.Debug("request served", fields...)
		}
	}
}

// Recovery turns a panic into a 500 JSON error and logs the panic value.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
