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

// HandleServiceError maps service sentinels to HTTP responses. The two
// generation failures stay distinct: a format failure asks the user to
// retry, an availability failure tells the client to switch to the
// preference-vector fallback path.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrInvalidPreferenceVector):
		RespondError(c, http.StatusBadRequest, "Preference vector must contain exactly 5 numeric values")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrProfileNotFound):
		RespondError(c, http.StatusNotFound, "No preference profile found, submit preferences first")
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusForbidden, "Itinerary does not belong to the current user")
	case errors.Is(err, ErrNoCandidates):
		RespondError(c, http.StatusUnprocessableEntity, "No real places could be found for the requested cities")
	case errors.Is(err, ErrGenerationFormat):
		RespondError(c, http.StatusBadGateway, "The AI returned an unreadable plan, please try again")
	case errors.Is(err, ErrGenerationUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "AI generation is unavailable, use preference-based recommendations instead")
	case errors.Is(err, ErrPersistenceWrite):
		log.Printf("Persistence error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to save itinerary, please retry")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
