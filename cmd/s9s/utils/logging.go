// Package utils provides utility functions for the s9s CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"os"
	"strings"

	"github.com/concave-dev/s9s/internal/config"
	"github.com/concave-dev/s9s/internal/logging"
)

// RestyLogger implements resty.Logger and routes Resty's messages through
// the package loggers.
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (RestyLogger) Errorf(format string, v ...any) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (RestyLogger) Warnf(format string, v ...any) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (RestyLogger) Debugf(format string, v ...any) {
	logging.Debug(format, v...)
}

// LogSettings are the option values that decide the log level.
type LogSettings interface {
	IsDebug() bool
	IsVerbose() bool
}

// SetupLogging configures the loggers. DEBUG=true or --debug enables debug
// output, --verbose enables INFO, a valid S9S_LOG_LEVEL selects its level,
// otherwise only errors are shown. A nil settings value configures from the
// environment alone.
//
// Standard library log output is routed to the DEBUG level.
func SetupLogging(settings LogSettings) {
	logging.RedirectStandardLog(logging.NewLevelWriter("DEBUG", "stdlib"))

	envLevel := strings.ToUpper(os.Getenv(config.EnvLogLevel))

	switch {
	case os.Getenv("DEBUG") == "true" || (settings != nil && settings.IsDebug()):
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
	case settings != nil && settings.IsVerbose():
		logging.RestoreOutput()
		logging.SetLevel("INFO")
	case envLevel != "" && logging.ValidateLogLevel(envLevel) == nil:
		logging.RestoreOutput()
		logging.SetLevel(envLevel)
	default:
		logging.SetLevel(config.DefaultLogLevel)
		logging.SuppressOutput()
	}
}
