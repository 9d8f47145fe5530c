// Package shared provides common utilities and test helpers used across
// the codebase. It holds only generic functionality that belongs to no
// specific domain or architectural layer: the testutil subpackage with
// log-capture handlers and combine data fixtures.
package shared
