// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/akhilkushwaha/portfolio-backend/internal/repository"
	"github.com/akhilkushwaha/portfolio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ErrorPayload is the error envelope for the stats and proxy routes.
type ErrorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Envelope is the {success, message, data} shape used by the contact routes.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// MapError converts a domain error into an HTTP status. Extend here as new
// domain error categories emerge.
func MapError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WriteError writes an ErrorPayload and aborts the context.
func WriteError(c *gin.Context, status int, payload ErrorPayload) {
	c.AbortWithStatusJSON(status, payload)
}

// WriteSuccess writes a success Envelope.
func WriteSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// WriteFailure writes a failure Envelope and aborts the context.
func WriteFailure(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message})
}
