// Package config loads application configuration from environment
// variables (prefix COMBINE) with an optional config.yaml overlay, and
// owns path resolution for all file locations.
//
// All paths resolve relative to the executable directory, never the
// current working directory, so the tools behave the same no matter
// where they are invoked from.
package config
