// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// environment mirrors the variables the client reads. API_HOST and
// QUBE_API_URL both name the base URL; API_HOST wins when both are set.
type environment struct {
	APIHost        string        `env:"API_HOST"`
	APIURL         string        `env:"QUBE_API_URL"`
	APIVersion     string        `env:"QUBE_API_VERSION"`
	RequestTimeout time.Duration `env:"QUBE_REQUEST_TIMEOUT"`
	LogFile        string        `env:"QUBE_LOG_FILE"`
	LogLevel       string        `env:"QUBE_LOG_LEVEL"`
	JSONFilePath   string        `env:"CONFIG"`
}

// parseEnv reads the client's environment variables using the caarlos0/env
// library.
//
// Returns a wrapped error if a value cannot be converted to its target type
// (e.g. a malformed QUBE_REQUEST_TIMEOUT).
func parseEnv() (*StructuredConfig, error) {
	var vars environment
	if err := env.Parse(&vars); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	baseURL := vars.APIHost
	if baseURL == "" {
		baseURL = vars.APIURL
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			Version:        vars.APIVersion,
			RequestTimeout: vars.RequestTimeout,
		},
		Log: Log{
			File:  vars.LogFile,
			Level: vars.LogLevel,
		},
		JSONFilePath: vars.JSONFilePath,
	}, nil
}
