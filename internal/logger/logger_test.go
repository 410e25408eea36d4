package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInit_FileLogging(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug}))
	t.Cleanup(func() { Close() })

	Debug("resolved", "pairs", 3)
	require.NoError(t, Close())

	name := logPrefix + time.Now().Format("2006-01-02") + logSuffix
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"resolved"`)
	require.Contains(t, string(data), `"pairs":3`)
}

func TestInit_Stderr(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Stderr: &buf, Level: slog.LevelWarn}))
	t.Cleanup(func() { Init(Options{}) })

	Info("hidden")
	Warn("shown", "group", "mtl")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "group=mtl")
}

func TestInit_DisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{}))
	Error("nowhere")
	require.NoError(t, Close())
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	files := map[string]bool{
		"locatorctl-2024-01-01.log": false, // expired
		"locatorctl-2024-06-01.log": true,
		"locatorctl-garbage.log":    true,
		"other-2020-01-01.log":      true,
	}
	for name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cleanOldLogs(dir, now)

	for name, keep := range files {
		_, err := os.Stat(filepath.Join(dir, name))
		if keep {
			require.NoError(t, err, name)
		} else {
			require.ErrorIs(t, err, os.ErrNotExist, name)
		}
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)

	lvl, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)

	_, err = ParseLevel("chatty")
	require.Error(t, err)
}
