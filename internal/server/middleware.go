package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"bidding-dashboard/utils"

	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "X-Admin-Key"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if len(c.Errors) > 0 {
		fields["errors"] = c.Errors.String()
	}
	utils.Info("HTTP Request", fields)
}

// AdminKeyMiddleware guards admin routes with a shared key. An empty key leaves them open.
func AdminKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		given := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("missing or wrong admin key"), "Unauthorized")
			utils.Warn("AdminKeyMiddleware: rejected admin request", map[string]any{"path": c.Request.URL.Path})
			c.Abort()
			return
		}
		c.Next()
	}
}
