package loader

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNopLogger(t *testing.T) {
	t.Run("does nothing", func(t *testing.T) {
		l := NopLogger{}
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l2 := NopLogger{}.With("key", "value")
		_, ok := l2.(NopLogger)
		assert.True(t, ok, "With should return NopLogger")
	})
}

func TestSlogAdapter(t *testing.T) {
	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("logs at each level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("debug message", "key", "value")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		out := buf.String()
		for _, want := range []string{"level=DEBUG", "debug message", "key=value", "level=INFO", "level=WARN", "level=ERROR"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("With adds attributes", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

		adapter.With("source", "openapi.yaml").Info("loaded")
		assert.Contains(t, buf.String(), "source=openapi.yaml")
	})
}

func TestZapAdapter(t *testing.T) {
	t.Run("NewZapAdapter with nil uses nop", func(t *testing.T) {
		adapter := NewZapAdapter(nil)
		require.NotNil(t, adapter.logger)
		adapter.Info("discarded")
	})

	t.Run("logs at each level with fields", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		adapter := NewZapAdapter(zap.New(core).Sugar())

		adapter.Debug("debug message", "key", "value")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		entries := logs.All()
		require.Len(t, entries, 4)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "debug message", entries[0].Message)
		assert.Equal(t, "value", entries[0].ContextMap()["key"])
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	})

	t.Run("With adds fields", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		adapter := NewZapAdapter(zap.New(core).Sugar())

		adapter.With("rule", "paths").Info("evaluated")
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "paths", logs.All()[0].ContextMap()["rule"])
	})

	t.Run("level filtering", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		adapter := NewZapAdapter(zap.New(core).Sugar())

		adapter.Debug("hidden")
		adapter.Warn("shown")
		assert.Equal(t, 1, logs.Len())
	})
}

func TestLoaderUsesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := LoadWithOptions(WithBytes([]byte("openapi: 3.0.0\n")), WithLogger(logger))
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "document loaded"))
}
