package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer errors to HTTP responses. Pipeline
// failures keep their upstream detail in the message so no failure is
// silently swallowed at the boundary.
func HandleServiceError(c *gin.Context, err error) {
	var upstream *UpstreamError
	var persistence *PersistenceError

	switch {
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrProfileNotFound):
		RespondError(c, http.StatusNotFound, "Profile not found")
	case errors.Is(err, ErrPreferencesNotFound):
		RespondError(c, http.StatusNotFound, "Preferences not found")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAPIKeyMissing):
		log.Printf("Configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Gemini API key not configured")
	case errors.As(err, &upstream):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, upstream.Error())
	case errors.Is(err, ErrMalformedResponse):
		log.Printf("Malformed model response: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &persistence):
		log.Printf("Persistence error: %v", err)
		RespondError(c, http.StatusInternalServerError, persistence.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
