package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrorInvalidQuery):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as {"error": ...}. Unexpected errors are logged and
// reported to the caller as a bare internal error.
func (s *HTTPServer) fail(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), err.Error(), common.RequestIDKey, c.GetString(common.RequestIDKey))
		c.JSON(code, gin.H{"error": common.ErrorInternal.Error()})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
