package config

import (
	"time"

	"github.com/spf13/pflag"
)

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	--api-host         API base URL, e.g. https://api.qube.aicube.ca
//	--api-version      API version path segment, e.g. v1
//	--request-timeout  per-request timeout, e.g. 30s
//	--log-file         log file path
//	--log-level        log level (debug, info, warn, error)
//	-c/--config        JSON file path with configs
//	-v/--version       print build information and exit
//
// -h/--help prints usage and returns [pflag.ErrHelp].
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiHost        string
		apiVersion     string
		requestTimeout time.Duration
		logFile        string
		logLevel       string
		jsonConfigPath string
		showVersion    bool
	)

	fs := pflag.NewFlagSet("qube-admin", pflag.ContinueOnError)
	fs.StringVar(&apiHost, "api-host", "", "API base URL")
	fs.StringVar(&apiVersion, "api-version", "", "API version path segment")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.BoolVarP(&showVersion, "version", "v", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        apiHost,
			Version:        apiVersion,
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
	}, nil
}
