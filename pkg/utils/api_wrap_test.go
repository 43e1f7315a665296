package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceErrorStatus(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("trace_id", "test-trace")

	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrInvalidPage, http.StatusBadRequest},
		{ErrInvalidPreferenceVector, http.StatusBadRequest},
		{ErrItineraryNotFound, http.StatusNotFound},
		{ErrProfileNotFound, http.StatusNotFound},
		{ErrNotOwner, http.StatusForbidden},
		{ErrNoCandidates, http.StatusUnprocessableEntity},
		{ErrGenerationFormat, http.StatusBadGateway},
		{ErrGenerationUnavailable, http.StatusServiceUnavailable},
		{ErrPersistenceWrite, http.StatusInternalServerError},
		{ErrDatabaseError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, body := serviceErrorStatus(t, tc.err)
		assert.Equal(t, tc.code, code, "for %v", tc.err)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "test-trace", body.TraceID)
	}
}

func TestHandleServiceErrorUnavailablePointsAtFallback(t *testing.T) {
	_, body := serviceErrorStatus(t, ErrGenerationUnavailable)
	assert.Contains(t, body.Message, "preference-based recommendations")
}
