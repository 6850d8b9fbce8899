package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("dataset loaded", "prompts", 10)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "dataset loaded")
	assert.Contains(t, out, "prompts=10")
}

func TestNewLevels(t *testing.T) {
	ctx := context.Background()

	quiet := New(false)
	assert.False(t, quiet.Enabled(ctx, slog.LevelInfo))

	debug := New(true)
	assert.True(t, debug.Enabled(ctx, slog.LevelDebug))
}
