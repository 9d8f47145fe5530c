// Package http provides the HTTP handlers for the status API. Handlers
// stay thin: they translate requests into service calls and render the
// results with chi/render.
package http
