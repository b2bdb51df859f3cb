package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDefault installs a logger writing to a buffer and restores the old default afterwards
func captureDefault(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	InitLoggerWithWriter(cfg, buf)
	return buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestInitLoggerWithWriter_JSONCarriesBaseAttributes(t *testing.T) {
	buf := captureDefault(t, NewConfig("info", "JSON", "neocity-test", "2.0.0", "staging", false))

	slog.Warn("zone closed", "zone", "Port & Beach")

	entry := decodeLine(t, buf)
	assert.Equal(t, "zone closed", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Port & Beach", entry["zone"])
	assert.Equal(t, "neocity-test", entry[AttrKeyService])
	assert.Equal(t, "2.0.0", entry[AttrKeyVersion])
	assert.Equal(t, "staging", entry[AttrKeyEnvironment])
	assert.NotContains(t, entry, slog.SourceKey)
}

func TestInitLoggerWithWriter_TextFiltersBelowLevel(t *testing.T) {
	buf := captureDefault(t, NewConfig("warn", "text", "svc", "v", "dev", false))

	slog.Info("menu shown")
	slog.Error("catalog broken")

	out := buf.String()
	assert.NotContains(t, out, "menu shown")
	assert.Contains(t, out, "catalog broken")
	assert.Contains(t, out, "service=svc")
}

func TestInitLoggerWithWriter_AddSource(t *testing.T) {
	buf := captureDefault(t, NewConfig("debug", "json", "svc", "v", "dev", true))

	slog.Debug("traced")

	assert.Contains(t, decodeLine(t, buf), slog.SourceKey)
}

func TestFromContext(t *testing.T) {
	t.Run("adds session id when present", func(t *testing.T) {
		buf := captureDefault(t, NewConfig("debug", "json", "svc", "v", "test", false))
		ctx := WithSessionID(context.Background(), "session-42")

		FromContext(ctx).Debug("job assigned")

		assert.Equal(t, "session-42", decodeLine(t, buf)[AttrKeySessionID])
	})

	t.Run("plain default logger without session", func(t *testing.T) {
		buf := captureDefault(t, NewConfig("debug", "json", "svc", "v", "test", false))

		FromContext(context.Background()).Debug("no session")

		assert.NotContains(t, decodeLine(t, buf), AttrKeySessionID)
	})
}

func TestSessionIDFromContext(t *testing.T) {
	id, ok := SessionIDFromContext(WithSessionID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = SessionIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}
