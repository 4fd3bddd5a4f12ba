package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response, success or failure, carries a "message" field; clients
// key off status codes, not structured error codes.

// ErrorResponse sends a standardized error response
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// InternalError hides any unexpected failure behind a fixed message so
// store or runtime details never reach the client.
func InternalError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "Something Bad Happened")
}
