package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/locatorkit/internal/config"
	"github.com/joshuapare/locatorkit/internal/logger"
	"github.com/joshuapare/locatorkit/internal/pairs"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	catalogFlag  string
	priorityFlag string
	encodingFlag string
	locFlag      string
	logFlag      bool
	logDirFlag   string
)

// settings is the effective configuration: environment first, then flags.
var settings = &config.Cfg{}

var rootCmd = &cobra.Command{
	Use:   "locatorctl",
	Short: "Classify intracranial contact pairs by brain region",
	Long: `locatorctl reads a session's contact-pair table and answers region
queries over it: per-pair masks for a region group, literal label matching,
and the most specific region group for every pair.

Settings come from a .env file and LOCATOR_* environment variables; flags
override both.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return loadSettings(cmd) },
	PersistentPostRun: func(cmd *cobra.Command, args []string) { logger.Close() },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "YAML region catalog (default: built-in)")
	rootCmd.PersistentFlags().
		StringVar(&priorityFlag, "priority", "", "Comma-separated group priority used by 'all'")
	rootCmd.PersistentFlags().StringVar(&encodingFlag, "encoding", "", "Pairs table encoding: utf-8 or windows-1252")
	rootCmd.PersistentFlags().StringVar(&locFlag, "localization", "", "Localization JSON with the whole-brain atlas")
	rootCmd.PersistentFlags().BoolVar(&logFlag, "log", false, "Write a JSON log file")
	rootCmd.PersistentFlags().StringVar(&logDirFlag, "log-dir", "", "Directory for log files")
}

// loadSettings merges environment configuration with explicitly set flags
// and initializes logging.
func loadSettings(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogFlag
	}
	if flags.Changed("priority") {
		cfg.Priority = config.SplitList(priorityFlag)
	}
	if flags.Changed("encoding") {
		enc, err := pairs.ParseEncoding(encodingFlag)
		if err != nil {
			return err
		}
		cfg.Encoding = enc
	}
	if flags.Changed("localization") {
		cfg.LocalizationPath = locFlag
	}
	if flags.Changed("log") {
		cfg.LogEnabled = logFlag
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = logDirFlag
	}
	settings = cfg

	opts := logger.Options{Enabled: cfg.LogEnabled, LogDir: cfg.LogDir, Level: cfg.LogLevel}
	if verbose && !cfg.LogEnabled {
		opts.Stderr = os.Stderr
	}
	return logger.Init(opts)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
