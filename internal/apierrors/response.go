package apierrors

import (
	"net/http"

	"campaign-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// respond writes the error response and logs correlation info
func respond(c *gin.Context, statusCode int, code, message string, details map[string]interface{}) {
	ctx := c.Request.Context()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
		observability.Field{Key: "error_message", Value: message},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, code, message, nil)
}

// BadRequestWithDetails sends a 400 response naming the inputs that caused it,
// so the caller can correct them without guessing.
func BadRequestWithDetails(c *gin.Context, code, message string, details map[string]interface{}) {
	respond(c, http.StatusBadRequest, code, message, details)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, code, message string) {
	respond(c, http.StatusForbidden, code, message, nil)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, code, message string) {
	respond(c, http.StatusConflict, code, message, nil)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string, details map[string]interface{}) {
	respond(c, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", message, details)
}

// BadGateway sends a 502 response for failures of an upstream WhatsApp gateway
func BadGateway(c *gin.Context, code, message string, details map[string]interface{}, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "upstream gateway failure", internalErr)
	respond(c, http.StatusBadGateway, code, message, details)
}

// ServiceUnavailable sends a 503 response and logs the internal error
func ServiceUnavailable(c *gin.Context, code, message string, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "service unavailable", internalErr)
	respond(c, http.StatusServiceUnavailable, code, message, nil)
}

// InternalError sends a sanitized 500 response - never exposes internal details
func InternalError(c *gin.Context, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "internal error", internalErr)
	respond(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred. Please try again later.", nil)
}
