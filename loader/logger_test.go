package loader

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = NopLogger{}
	})

	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		l2 := l.With("key", "value")
		_, ok := l2.(NopLogger)
		if !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = (*SlogAdapter)(nil)
	})

	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.logger == nil {
			t.Error("adapter.logger should not be nil")
		}
	})

	t.Run("levels route to the wrapped logger", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("debug message", "key", "value")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		out := buf.String()
		for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got: %s", want, out)
			}
		}
	})

	t.Run("With adds attributes to every log", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, nil)
		adapter := NewSlogAdapter(slog.New(handler))

		withLogger := adapter.With("database", "ITEM_DB")
		withLogger.Info("loaded")

		if !strings.Contains(buf.String(), "database=ITEM_DB") {
			t.Errorf("expected attribute in output, got: %s", buf.String())
		}
	})
}
