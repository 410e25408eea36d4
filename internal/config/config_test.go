package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/locatorkit/internal/pairs"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvCatalog, EnvPriority, EnvEncoding, EnvLocalization, EnvLog, EnvLogDir, EnvLogLevel} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.CatalogPath)
	require.Nil(t, cfg.Priority)
	require.Equal(t, pairs.EncodingUTF8, cfg.Encoding)
	require.False(t, cfg.LogEnabled)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvCatalog, " /etc/locator/catalog.yaml ")
	t.Setenv(EnvPriority, "hippocampus, mtl,,pfc")
	t.Setenv(EnvEncoding, "cp1252")
	t.Setenv(EnvLog, "TRUE")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err, "explicit env file must exist")

	envFile := filepath.Join(t.TempDir(), "locator.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOCATOR_LOG_DIR=/tmp/locator-logs\nLOCATOR_LOCALIZATION=loc.json\n"), 0o644))

	cfg, err = Load(envFile)
	require.NoError(t, err)
	require.Equal(t, "/etc/locator/catalog.yaml", cfg.CatalogPath)
	require.Equal(t, []string{"hippocampus", "mtl", "pfc"}, cfg.Priority)
	require.Equal(t, pairs.EncodingWindows1252, cfg.Encoding)
	require.True(t, cfg.LogEnabled)
	require.Equal(t, "/tmp/locator-logs", cfg.LogDir)
	require.Equal(t, "loc.json", cfg.LocalizationPath)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogDir, "/from/env")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOCATOR_LOG_DIR=/from/file\n"), 0o644))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	require.Equal(t, "/from/env", cfg.LogDir)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEncoding, "ebcdic")
	_, err := Load(writeEmptyEnv(t))
	require.Error(t, err)

	clearEnv(t)
	t.Setenv(EnvLogLevel, "chatty")
	_, err = Load(writeEmptyEnv(t))
	require.Error(t, err)
}

func writeEmptyEnv(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	return p
}

func TestSplitList(t *testing.T) {
	require.Nil(t, SplitList(""))
	require.Equal(t, []string{"a", "b"}, SplitList(" a ,, b ,"))
}

// chdirTemp changes into a fresh temp dir and restores the working
// directory on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
