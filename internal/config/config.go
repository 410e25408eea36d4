// Package config loads locatorctl settings from a .env file and the
// environment. Command-line flags override these values.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/joshuapare/locatorkit/internal/logger"
	"github.com/joshuapare/locatorkit/internal/pairs"
)

// Environment variable names.
const (
	EnvCatalog      = "LOCATOR_CATALOG"
	EnvPriority     = "LOCATOR_PRIORITY"
	EnvEncoding     = "LOCATOR_ENCODING"
	EnvLocalization = "LOCATOR_LOCALIZATION"
	EnvLog          = "LOCATOR_LOG"
	EnvLogDir       = "LOCATOR_LOG_DIR"
	EnvLogLevel     = "LOCATOR_LOG_LEVEL"
)

// Cfg holds runtime configuration.
type Cfg struct {
	CatalogPath      string         // YAML catalog; empty means built-in
	Priority         []string       // group names for All; empty means catalog default
	Encoding         pairs.Encoding // pairs table decoding
	LocalizationPath string         // optional localization JSON

	LogEnabled bool
	LogDir     string
	LogLevel   slog.Level
}

// Load reads envFiles (or .env when none are given, ignoring a missing
// file) and then the environment. Variables already set in the environment
// take precedence over file values.
func Load(envFiles ...string) (*Cfg, error) {
	if len(envFiles) == 0 {
		// Best-effort: load .env from current directory
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	enc, err := pairs.ParseEncoding(os.Getenv(EnvEncoding))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", EnvEncoding, err)
	}

	lvl, err := logger.ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
	}

	return &Cfg{
		CatalogPath:      strings.TrimSpace(os.Getenv(EnvCatalog)),
		Priority:         SplitList(os.Getenv(EnvPriority)),
		Encoding:         enc,
		LocalizationPath: strings.TrimSpace(os.Getenv(EnvLocalization)),
		LogEnabled:       parseBool(os.Getenv(EnvLog)),
		LogDir:           strings.TrimSpace(os.Getenv(EnvLogDir)),
		LogLevel:         lvl,
	}, nil
}

// SplitList splits a comma-separated list, dropping empty entries.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes")
}
