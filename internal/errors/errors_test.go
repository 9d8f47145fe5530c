package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorError(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
}

func TestAPIErrorRender(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, render.Render(rec, req, ErrNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)
	assert.Equal(t, "Resource not found", body.Message)
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		err        *APIError
		statusCode int
		errorCode  string
	}{
		{ErrInvalidRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{ErrRateLimitExceeded, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{ErrInternalServer, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.statusCode, tt.err.StatusCode, tt.errorCode)
		assert.Equal(t, tt.errorCode, tt.err.ErrorCode)
		assert.NotEmpty(t, tt.err.Message)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("athlete")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "athlete not found", err.Message)
	assert.Equal(t, "athlete", err.Details)
}

func TestInternalServerError(t *testing.T) {
	cause := errors.New("connection refused")
	err := InternalServerError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "connection refused", err.Details)
}

func TestNewWithDetails(t *testing.T) {
	err := NewWithDetails(http.StatusBadRequest, "INVALID_REQUEST", "bad field", map[string]string{"field": "height"})

	assert.Equal(t, map[string]string{"field": "height"}, err.Details)
}
