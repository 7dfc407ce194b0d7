// Package config provides configuration structures and loading for firesnap.
package config

// Config represents the complete application configuration.
// Both pipelines receive a fully resolved Config value; nothing reads
// the environment after loading.
type Config struct {
	ProjectID          string        `mapstructure:"project_id"`
	ServiceAccountPath string        `mapstructure:"service_account_path"`
	DatabaseName       string        `mapstructure:"database_name"`
	Export             ExportConfig  `mapstructure:"export"`
	Import             ImportConfig  `mapstructure:"import"`
	Logging            LoggingConfig `mapstructure:"logging"`
}

// ExportConfig represents export pipeline settings.
type ExportConfig struct {
	SampleLimit int    `mapstructure:"sample_limit"`
	OutputDir   string `mapstructure:"output_dir"`
}

// ImportConfig represents import pipeline settings.
type ImportConfig struct {
	ImportDir  string `mapstructure:"import_dir"`
	ReportsDir string `mapstructure:"reports_dir"`
	DryRun     bool   `mapstructure:"dry_run"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or text
	Output string `mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultDatabaseName is Firestore's default database instance identifier.
const DefaultDatabaseName = "(default)"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		DatabaseName: DefaultDatabaseName,
		Export: ExportConfig{
			SampleLimit: 5,
			OutputDir:   "firestore_export",
		},
		Import: ImportConfig{
			ImportDir: "firestore_import",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// UsesDefaultDatabase reports whether the default database instance is targeted.
func (c *Config) UsesDefaultDatabase() bool {
	return c.DatabaseName == "" || c.DatabaseName == DefaultDatabaseName
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied. Overriding the import
// directory clears a derived reports directory so it is re-resolved
// relative to the new location.
func (c *Config) ApplyOverrides(logLevel, logFormat string, sampleLimit int, outputDir, importDir string, dryRun bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if sampleLimit > 0 {
		c.Export.SampleLimit = sampleLimit
	}
	if outputDir != "" {
		c.Export.OutputDir = outputDir
	}
	if importDir != "" {
		c.Import.ImportDir = importDir
		c.Import.ReportsDir = ""
	}
	if dryRun {
		c.Import.DryRun = true
	}
}
