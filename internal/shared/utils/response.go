package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
)

// MessageResponse is the body every failed request carries.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse sends the payload as-is with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends the payload with a 201 status code.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse sends an error response with custom status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// ErrorResponseWithError sends an error response based on error type.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, MessageResponse{Message: appErr.Message})
		return
	}

	// Do not expose internal error details to prevent information leakage
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error occurred"})
}

// NoContentResponse sends a no content response.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
