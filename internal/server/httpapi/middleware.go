package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID keeps the caller's X-Request-ID or mints a new one and echoes
// it back.
func (s *HTTPServer) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(common.RequestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(common.RequestIDKey, id)
		c.Header(common.RequestIDHeaderName, id)

		c.Next()
	}
}

func (s *HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			common.RequestIDKey, c.GetString(common.RequestIDKey),
		)
	}
}

func (s *HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error(c.Request.Context(), "panic recovered", "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": common.ErrorInternal.Error()})
	})
}
