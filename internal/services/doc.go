// Package services implements the business logic layer behind the HTTP
// handlers. Services take injected dependencies and loggers, propagate
// context, and stay free of transport concerns so they remain testable
// on their own.
package services
