package handler

import (
	"net/http"

	"socialnet/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse is the envelope of mutations that return no payload.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Friend request sent"`
}

var errInvalidBody = service.ValidationError("Invalid request body")

func statusFor(err error) int {
	switch service.KindOf(err) {
	case service.KindValidation, service.KindConflict:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. Unclassified errors become a 500 carrying
// the raw error text and are attached to the context for the request logger.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: message})
}
