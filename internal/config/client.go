package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the API root without the /api/<version> suffix.
	BaseURL string
	// APIVersion is the version path segment.
	APIVersion string
	// RequestTimeout is the timeout for one outbound request.
	RequestTimeout time.Duration
}

// ClientLog holds the logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the API location and the request timeout.
	Adapter ClientAdapter
	// Log contains the log destination and level.
	Log ClientLog
	// ShowVersion asks for build information instead of a session.
	ShowVersion bool
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.API.BaseURL,
			APIVersion:     cfg.API.Version,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		ShowVersion: cfg.ShowVersion,
	}

	return clientCfg, clientCfg.validate()
}
