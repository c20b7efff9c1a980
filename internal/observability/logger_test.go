package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/accentd/internal/config"
)

func newTestLogger(t *testing.T, level string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := NewLoggerWithLevel(config.LoggingConfig{Format: "json"}, &buf, parseLevel(level))
	return logger, &buf
}

func TestNewLogger_JSONFormat(t *testing.T) {
	logger, buf := newTestLogger(t, "info")
	logger.Info("test message", slog.String("key", "value"))

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, `"key":"value"`)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &parsed))
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithLevel(config.LoggingConfig{Format: "text"}, &buf, slog.LevelInfo)
	logger.Info("test message", slog.String("key", "value"))

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", slog.LevelDebug, true},
		{"info does not log debug", "info", slog.LevelDebug, false},
		{"info logs at info level", "info", slog.LevelInfo, true},
		{"warn does not log info", "warn", slog.LevelInfo, false},
		{"error logs at error level", "error", slog.LevelError, true},
		{"trace logs at trace level", "trace", LevelTrace, true},
		{"debug does not log trace", "debug", LevelTrace, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(t, tt.configLevel)
			logger.Log(context.Background(), tt.logLevel, "test")

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewLogger_TraceLevelName(t *testing.T) {
	logger, buf := newTestLogger(t, "trace")
	logger.Log(context.Background(), LevelTrace, "palette variable")

	assert.Contains(t, buf.String(), `"level":"TRACE"`)
	assert.NotContains(t, buf.String(), "DEBUG-4")
}

func TestNewLogger_CustomTimeFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LoggingConfig{Format: "json", TimeFormat: "2006-01-02"}
	logger := NewLoggerWithLevel(cfg, &buf, slog.LevelInfo)
	logger.Info("test message")

	assert.Contains(t, buf.String(), `"time":"`+time.Now().Format("2006-01-02")+`"`)
}

func TestRuntimeLogLevel(t *testing.T) {
	original := GetLogLevel()
	t.Cleanup(func() { _ = SetLogLevel(original) })

	var buf bytes.Buffer
	logger := NewLoggerWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	assert.Equal(t, "info", GetLogLevel())

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, "debug", GetLogLevel())
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	assert.Error(t, SetLogLevel("verbose"))
	assert.Equal(t, "debug", GetLogLevel())
}

func TestRequestLoggingToggle(t *testing.T) {
	original := IsRequestLoggingEnabled()
	t.Cleanup(func() { SetRequestLogging(original) })

	SetRequestLogging(false)
	assert.False(t, IsRequestLoggingEnabled())
	SetRequestLogging(true)
	assert.True(t, IsRequestLoggingEnabled())
}

func TestChainedWith(t *testing.T) {
	logger, buf := newTestLogger(t, "info")

	enriched := WithApp(WithComponent(WithRequestID(WithOperation(logger, "render_css"), "req-chain"), "accent"), "accentd")
	enriched.Info("chained test")

	output := buf.String()
	assert.Contains(t, output, `"operation":"render_css"`)
	assert.Contains(t, output, `"request_id":"req-chain"`)
	assert.Contains(t, output, `"component":"accent"`)
	assert.Contains(t, output, `"app":"accentd"`)
}

func TestWithError(t *testing.T) {
	logger, buf := newTestLogger(t, "info")

	WithError(logger, errors.New("something went wrong")).Info("test")
	assert.Contains(t, buf.String(), `"error":"something went wrong"`)

	buf.Reset()
	WithError(logger, nil).Info("test")
	assert.NotContains(t, buf.String(), `"error"`)
}

func TestContextHelpers(t *testing.T) {
	logger, buf := newTestLogger(t, "info")

	ctx := ContextWithLogger(context.Background(), logger)
	LoggerFromContext(ctx).Info("from context")
	assert.Contains(t, buf.String(), "from context")

	assert.NotNil(t, LoggerFromContext(context.Background()))

	ctx = ContextWithRequestID(context.Background(), "req-789")
	assert.Equal(t, "req-789", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestTimedOperationWithError(t *testing.T) {
	logger, buf := newTestLogger(t, "info")
	ctx := context.Background()

	var err error
	done := TimedOperationWithError(ctx, logger, "purge", &err)
	done()
	assert.Contains(t, buf.String(), "operation completed")
	assert.NotContains(t, buf.String(), "operation failed")

	buf.Reset()
	done = TimedOperationWithError(ctx, logger, "purge", &err)
	err = errors.New("database locked")
	done()
	assert.Contains(t, buf.String(), "operation failed")
	assert.Contains(t, buf.String(), "database locked")

	buf.Reset()
	TimedOperation(ctx, logger, "render")()
	assert.Contains(t, buf.String(), "duration")
}

func TestSensitiveFieldRedaction(t *testing.T) {
	tests := []struct {
		field string
		value string
	}{
		{"password", "secret123"},
		{"Password", "MyP@ssw0rd"},
		{"token", "jwt-token-abc"},
		{"api_key", "api-key-value"},
		{"dsn", "postgres://user:hunter2@db/accentd"},
		{"email", "someone@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			logger, buf := newTestLogger(t, "info")
			logger.Info("test message", slog.String(tt.field, tt.value))

			assert.NotContains(t, buf.String(), tt.value)
			assert.Contains(t, buf.String(), "test message")
		})
	}
}

func TestSensitiveFieldRedaction_Group(t *testing.T) {
	logger, buf := newTestLogger(t, "info")
	logger.Info("db connect",
		slog.Group("database",
			slog.String("driver", "postgres"),
			slog.String("password", "secret123"),
		),
	)

	assert.Contains(t, buf.String(), "postgres")
	assert.NotContains(t, buf.String(), "secret123")
}

func TestURLParameterRedaction(t *testing.T) {
	logger, buf := newTestLogger(t, "info")
	logger.Info("request", slog.String("url", "http://example.com/api?user=admin&password=secret123&token=xyz"))

	output := buf.String()
	assert.NotContains(t, output, "secret123")
	assert.NotContains(t, output, "token=xyz")
	assert.Contains(t, output, "password=[REDACTED]")
	assert.Contains(t, output, "user=admin")
}

func TestNonSensitiveDataNotRedacted(t *testing.T) {
	logger, buf := newTestLogger(t, "info")
	logger.Info("palette rendered",
		slog.String("user_id", "u-42"),
		slog.String("accent", "#2271b1"),
		slog.Int("variables", 17),
	)

	output := buf.String()
	assert.Contains(t, output, "u-42")
	assert.Contains(t, output, "#2271b1")
	assert.Contains(t, output, "17")
	assert.NotContains(t, output, "[REDACTED]")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}
