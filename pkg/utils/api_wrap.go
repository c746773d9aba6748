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

func traceIDOf(c *gin.Context) string {
	if traceID, ok := c.Get("trace_id"); ok {
		if s, ok := traceID.(string); ok {
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
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Destination is required")
	case errors.Is(err, ErrInvalidBudget):
		RespondError(c, http.StatusBadRequest, "Budget must be a positive number")
	case errors.Is(err, ErrInvalidDateFormat):
		RespondError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	case errors.Is(err, ErrInvalidDateRange):
		RespondError(c, http.StatusBadRequest, "End date must be after start date")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
