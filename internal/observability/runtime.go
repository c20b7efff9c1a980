package observability

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

var (
	globalLevel    = new(slog.LevelVar)
	requestLogging atomic.Bool
)

func init() {
	requestLogging.Store(true)
}

// ValidLogLevels lists the names SetLogLevel accepts.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// SetLogLevel changes the level of every logger built by NewLogger.
func SetLogLevel(level string) error {
	if !isValidLevel(level) {
		return fmt.Errorf("invalid log level %q", level)
	}
	globalLevel.Set(parseLevel(level))
	return nil
}

// GetLogLevel returns the current runtime level name.
func GetLogLevel() string {
	switch l := globalLevel.Level(); {
	case l <= LevelTrace:
		return "trace"
	case l <= slog.LevelDebug:
		return "debug"
	case l <= slog.LevelInfo:
		return "info"
	case l <= slog.LevelWarn:
		return "warn"
	default:
		return "error"
	}
}

// SetRequestLogging toggles logging of successful HTTP requests.
// Requests that fail with a 4xx or 5xx status are always logged.
func SetRequestLogging(enabled bool) {
	requestLogging.Store(enabled)
}

// IsRequestLoggingEnabled reports whether successful requests are logged.
func IsRequestLoggingEnabled() bool {
	return requestLogging.Load()
}

func isValidLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if l == level {
			return true
		}
	}
	return false
}
