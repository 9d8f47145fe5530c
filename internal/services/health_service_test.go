package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combinecli/internal/shared/testutil"
)

func TestIdentity(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	svc := NewHealthService("Athletic Metrics Analyzer API", "0.1.0", logger)

	identity := svc.Identity(context.Background())

	assert.Equal(t, "Athletic Metrics Analyzer API", identity.Message)
	assert.Equal(t, "running", identity.Status)
	assert.Equal(t, "0.1.0", identity.Version)
}

func TestHealthCheck(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	svc := NewHealthService("Athletic Metrics Analyzer API", "0.1.0", logger)

	before := time.Now()
	status := svc.HealthCheck(context.Background())

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "0.1.0", status.Version)
	assert.False(t, status.Timestamp.Before(before))

	require.NotNil(t, status.Runtime)
	assert.Contains(t, status.Runtime, "uptime_seconds")
	assert.Contains(t, status.Runtime, "go_version")
	assert.Contains(t, status.Runtime, "goroutines")

	uptime, ok := status.Runtime["uptime_seconds"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, uptime, 0.0)
}

func TestNewHealthServiceNilLogger(t *testing.T) {
	svc := NewHealthService("app", "1.0.0", nil)
	assert.Equal(t, "running", svc.Identity(context.Background()).Status)
}

func TestNewHealthServiceLogsInitialization(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	NewHealthServiceWithBuildInfo("app", "1.0.0", "2026-01-01", logger)

	assert.True(t, handler.HasMessage("HealthService initialized"))
}
