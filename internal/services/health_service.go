package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// HealthService provides the service identity and health check payloads.
// It shares no code path with the batch importer beyond configuration
// and logging infrastructure.
type HealthService struct {
	appName   string
	version   string
	buildTime string
	startTime time.Time
	logger    *slog.Logger
}

// Identity represents the service identity response served at the root
type Identity struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// HealthStatus represents the health probe response
type HealthStatus struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Version   string         `json:"version"`
	Runtime   map[string]any `json:"runtime,omitempty"`
}

// NewHealthService creates a new health service
func NewHealthService(appName, version string, logger *slog.Logger) *HealthService {
	return NewHealthServiceWithBuildInfo(appName, version, "", logger)
}

// NewHealthServiceWithBuildInfo creates a new health service with build information
func NewHealthServiceWithBuildInfo(appName, version, buildTime string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("app", appName),
		slog.String("version", version),
		slog.String("build_time", buildTime))

	return &HealthService{
		appName:   appName,
		version:   version,
		buildTime: buildTime,
		startTime: time.Now(),
		logger:    logger,
	}
}

// Identity returns the service identity document
func (hs *HealthService) Identity(ctx context.Context) Identity {
	return Identity{
		Message: hs.appName,
		Status:  "running",
		Version: hs.version,
	}
}

// HealthCheck returns the health probe payload
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.DebugContext(ctx, "HealthCheck: performing health check",
		slog.String("version", hs.version),
		slog.String("uptime", time.Since(hs.startTime).String()))

	return HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]any{
			"uptime_seconds": time.Since(hs.startTime).Seconds(),
			"go_version":     runtime.Version(),
			"goroutines":     runtime.NumGoroutine(),
		},
	}
}
