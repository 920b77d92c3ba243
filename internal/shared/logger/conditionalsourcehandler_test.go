package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		shouldHaveSource bool
	}{
		{"info hidden by default", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn shown", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error shown", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"info shown in debug mode", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.showSourceLevels...))

			log.Log(t.Context(), tt.level, "hello", "k", "v")

			out := buf.String()
			assert.Contains(t, out, "hello")
			assert.Equal(t, tt.shouldHaveSource, strings.Contains(out, "source="), out)
			if tt.shouldHaveSource {
				assert.Contains(t, out, "conditionalsourcehandler_test.go")
			}
		})
	}
}

func TestConditionalSourceHandler_WithAttrsKeepsLevels(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).With("component", "sweeper")

	log.Error("boom")

	assert.Contains(t, buf.String(), "component=sweeper")
	assert.Contains(t, buf.String(), "source=")
}
