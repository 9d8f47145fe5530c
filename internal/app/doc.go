// Package app wires the status API together: configuration, logging,
// OpenTelemetry providers, services, router and HTTP server, with
// graceful shutdown on SIGINT/SIGTERM.
package app
