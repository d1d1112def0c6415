package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herald/internal/adapters/logger"
)

func newHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level})
	return h, buf
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h, _ := newHandler(t, slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_LevelMarkers(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info has no marker", level: slog.LevelInfo, want: "hello\n"},
		{name: "warn gets bang", level: slog.LevelWarn, want: "! hello\n"},
		{name: "error gets cross", level: slog.LevelError, want: "✗ hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newHandler(t, slog.LevelInfo)

			r := slog.NewRecord(time.Time{}, tt.level, "hello", 0)
			require.NoError(t, h.Handle(context.Background(), r))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_AttrsAndGroup(t *testing.T) {
	h, buf := newHandler(t, slog.LevelInfo)

	grouped := h.WithGroup("dispatch").WithAttrs([]slog.Attr{slog.String("agent", "readme-updater")})

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "queued", 0)
	r.AddAttrs(slog.Int("events", 3))
	require.NoError(t, grouped.Handle(context.Background(), r))

	assert.Equal(t, "queued dispatch.agent=readme-updater dispatch.events=3\n", buf.String())
}
