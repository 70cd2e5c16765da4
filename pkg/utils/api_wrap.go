package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
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
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError translates service sentinel errors into stable HTTP
// responses. Upstream provider error types must never reach this point.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDestinationNotFound):
		RespondError(c, http.StatusNotFound, "Destination not found")
	case errors.Is(err, ErrRouteNotFound):
		RespondError(c, http.StatusNotFound, "No route found between origin and destination")
	case errors.Is(err, ErrPlaceNotResolved):
		RespondError(c, http.StatusNotFound, "Shared link could not be resolved")
	case errors.Is(err, ErrDestinationConflict):
		RespondError(c, http.StatusBadRequest, "Destination with these coordinates already exists")
	case errors.Is(err, ErrInvalidCoordinates):
		RespondError(c, http.StatusBadRequest, "Invalid coordinates")
	case errors.Is(err, ErrInvalidName):
		RespondError(c, http.StatusBadRequest, "Name must not be empty")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Invalid pagination parameters")
	case errors.Is(err, ErrInvalidDailyLimit):
		RespondError(c, http.StatusBadRequest, "Daily limit must be a positive number of kilometers")
	case errors.Is(err, ErrUpstreamTimeout):
		logrus.Errorf("Upstream timeout: %v", err)
		RespondError(c, http.StatusGatewayTimeout, "Upstream provider timed out")
	case errors.Is(err, ErrUpstreamFailure):
		logrus.Errorf("Upstream failure: %v", err)
		RespondError(c, http.StatusBadGateway, "Upstream provider error")
	case errors.Is(err, ErrDatabaseError):
		logrus.Errorf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logrus.Errorf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
