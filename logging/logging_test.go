package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"Warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closer, err := Setup(dir, "info", nil)
	require.NoError(t, err)
	logger.Info("hello file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
	assert.Contains(t, string(data), "logging initialized")
}

func TestSetup_ConsoleFanOut(t *testing.T) {
	var console bytes.Buffer
	logger, closer, err := Setup(t.TempDir(), "debug", &console)
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })

	logger.Debug("both sinks")
	assert.Contains(t, console.String(), "both sinks")
}

func TestSetup_InvalidLevel(t *testing.T) {
	_, _, err := Setup(t.TempDir(), "loud", nil)
	assert.Error(t, err)
}

func TestSetup_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, make([]byte, MaxSize+1), 0644))

	_, closer, err := Setup(dir, "info", nil)
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := false
	for _, e := range entries {
		if e.Name() != FileName && strings.HasPrefix(e.Name(), "steer-") && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "expected a timestamped rotated log")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(MaxSize))
}

func TestNew_InfoFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, nil, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_NoWritersDiscards(t *testing.T) {
	logger := New(nil, nil, slog.LevelDebug)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

type failingHandler struct{}

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}
func (f failingHandler) WithAttrs([]slog.Attr) slog.Handler { return f }
func (f failingHandler) WithGroup(string) slog.Handler      { return f }

func TestMultiHandler_ContinuesPastFailure(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(failingHandler{}, nil, slog.NewTextHandler(&buf, nil))
	logger := slog.New(h).With("component", "test").WithGroup("g")
	logger.Info("survives", "k", 1)

	assert.Contains(t, buf.String(), "survives")
	assert.Contains(t, buf.String(), "component=test")
}
