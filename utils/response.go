package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. The client only sees message;
// err is attached to the request so the request logger records the detail.
func JSONError(c *gin.Context, status int, err error, message string) {
	_ = c.Error(err)
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   http.StatusText(status),
	})
}

// TextResponse sends a plain text body. Dashboard clients read submit results as text.
func TextResponse(c *gin.Context, status int, message string) {
	c.String(status, message)
}
