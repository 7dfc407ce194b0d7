package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override environment configuration
var (
	envFile     string
	logLevel    string
	logFormat   string
	sampleLimit int
	outputDir   string
	importDir   string
	dryRun      bool
)

var rootCmd = &cobra.Command{
	Use:   "firesnap",
	Short: "Firestore Structure Exporter & Importer",
	Long: `A CLI tool for exporting a snapshot of a Firestore database's structure
and sample data to local JSON files, and importing JSON files back into
a (possibly different) Firestore project.

Features:
  - Read-only export with bounded sample sizes per collection
  - Interactive collection selection with confirmation prompts
  - Dry-run mode that simulates imports without writing
  - Hard-coded production service account lockout for imports
  - Timestamped import reports kept apart from collection files`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Env file flag
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "",
		"Path to an env file loaded before reading the environment (default: ./.env if present)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")
}

// GetEnvFile returns the env file path flag value
func GetEnvFile() string {
	return envFile
}

// CLIOverrides contains flag values that override environment configuration
type CLIOverrides struct {
	LogLevel    string
	LogFormat   string
	SampleLimit int
	OutputDir   string
	ImportDir   string
	DryRun      bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		SampleLimit: sampleLimit,
		OutputDir:   outputDir,
		ImportDir:   importDir,
		DryRun:      dryRun,
	}
}
