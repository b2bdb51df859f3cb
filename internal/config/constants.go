package config

import "github.com/osse101/NeoCity_Go/internal/logger"

// Environment variable names
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
)

// Defaults
const (
	DefaultLogLevel    = logger.LogLevelWarn
	DefaultLogFormat   = logger.LogFormatText
	DefaultEnvironment = "dev"
	DefaultServiceName = "neocity-life"
	DefaultVersion     = "dev"
)

// ValidLogFormats lists accepted LOG_FORMAT values
var ValidLogFormats = []string{logger.LogFormatText, logger.LogFormatJSON}

// ValidLogLevels lists accepted LOG_LEVEL values
var ValidLogLevels = []string{
	logger.LogLevelDebug,
	logger.LogLevelInfo,
	logger.LogLevelWarn,
	logger.LogLevelWarning,
	logger.LogLevelError,
}
