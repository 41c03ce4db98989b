package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every rejected field of a request body
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// ValidationError sends a response for validation errors
func ValidationError(c *gin.Context, errors map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errors})
}
