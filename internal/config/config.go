// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied after every other source has been merged.
const (
	DefaultBaseURL        = "https://api.qube.aicube.ca"
	DefaultAPIVersion     = "v1"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level configuration container for the qube
// admin client. It is populated by merging command-line flags, environment
// variables, an optional JSON file and built-in defaults.
type StructuredConfig struct {
	// API holds the location of the management API and the request budget.
	API API

	// Log holds the log destination and verbosity.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string

	// ShowVersion asks the client to print build information and exit.
	// Only settable from the command line.
	ShowVersion bool
}

// API holds settings of the outbound HTTP client.
type API struct {
	// BaseURL is the scheme and host of the API (e.g. "https://api.qube.aicube.ca").
	// Env: API_HOST, falling back to QUBE_API_URL
	BaseURL string

	// Version is the path segment after /api/ (e.g. "v1").
	// Env: QUBE_API_VERSION
	Version string

	// RequestTimeout bounds a single request, connection included.
	// Env: QUBE_REQUEST_TIMEOUT
	RequestTimeout time.Duration
}

// Log holds settings of the file logger.
type Log struct {
	// File is the log file path. Empty selects a file next to the executable.
	// Env: QUBE_LOG_FILE
	File string

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: QUBE_LOG_LEVEL
	Level string
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. A field takes its value from the first source that sets
// it, in this order:
//  1. Command-line flags (args, without the program name)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
