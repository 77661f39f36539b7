package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	FromContext(ctx).Info("hello", "rule", 30)
	require.Contains(t, buf.String(), "rule=30")
}

func TestFromContextFallsBack(t *testing.T) {
	require.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("warn")
	require.True(t, ok)
	require.Equal(t, slog.LevelWarn, lvl)

	_, ok = ParseLevel("loud")
	require.False(t, ok)
}
