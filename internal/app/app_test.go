package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combinecli/internal/services"
)

var (
	testAppOnce sync.Once
	testApp     *Application
	testAppErr  error
)

// The prometheus exporter registers with the process-global registry, so
// the application is built once and shared across tests.
func newTestApplication(t *testing.T) *Application {
	t.Helper()
	testAppOnce.Do(func() {
		testApp, testAppErr = NewApplication()
	})
	require.NoError(t, testAppErr)
	require.NotNil(t, testApp)
	return testApp
}

func TestNewApplication(t *testing.T) {
	application := newTestApplication(t)

	assert.NotNil(t, application.Config)
	assert.NotNil(t, application.Router)
	assert.NotNil(t, application.Server)
	assert.NotNil(t, application.HealthService)
	assert.NotNil(t, application.Logger)
	assert.NotNil(t, application.OTelProviders)
	assert.Equal(t, ":8080", application.Server.Addr)
}

func TestIdentityRoute(t *testing.T) {
	application := newTestApplication(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body services.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, AppName, body.Message)
	assert.Equal(t, "running", body.Status)
	assert.Equal(t, VERSION, body.Version)
}

func TestHealthRoute(t *testing.T) {
	application := newTestApplication(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body services.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, VERSION, body.Version)
}

func TestMetricsRoute(t *testing.T) {
	application := newTestApplication(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotFoundRoute(t *testing.T) {
	application := newTestApplication(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/athletes", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestMethodNotAllowedRoute(t *testing.T) {
	application := newTestApplication(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "METHOD_NOT_ALLOWED")
}

func TestRequestIDHeader(t *testing.T) {
	application := newTestApplication(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSecurityHeadersApplied(t *testing.T) {
	application := newTestApplication(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
