package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable names recognized by Load.
const (
	EnvServiceAccountPath = "FIREBASE_SERVICE_ACCOUNT_PATH"
	EnvProjectID          = "FIREBASE_PROJECT_ID"
	EnvDatabaseName       = "FIREBASE_DATABASE_NAME"
	EnvSampleLimit        = "SAMPLE_LIMIT"
	EnvOutputDir          = "OUTPUT_DIR"
	EnvImportDir          = "IMPORT_DIR"
	EnvReportsDir         = "REPORTS_DIR"
	EnvDryRun             = "DRY_RUN"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
)

// Load reads configuration from the environment, optionally seeding it
// from an env file first. An empty envFile loads ./.env when present;
// a named env file must exist.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// Best-effort: a missing .env is not an error.
		_ = godotenv.Load()
	}

	v := viper.New()
	bindings := map[string]string{
		"service_account_path": EnvServiceAccountPath,
		"project_id":           EnvProjectID,
		"database_name":        EnvDatabaseName,
		"export.sample_limit":  EnvSampleLimit,
		"export.output_dir":    EnvOutputDir,
		"import.import_dir":    EnvImportDir,
		"import.reports_dir":   EnvReportsDir,
		"import.dry_run":       EnvDryRun,
		"logging.level":        EnvLogLevel,
		"logging.format":       EnvLogFormat,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	v.SetDefault("database_name", cfg.DatabaseName)
	v.SetDefault("export.sample_limit", cfg.Export.SampleLimit)
	v.SetDefault("export.output_dir", cfg.Export.OutputDir)
	v.SetDefault("import.import_dir", cfg.Import.ImportDir)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.output", cfg.Logging.Output)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DatabaseName == "" || cfg.DatabaseName == "default" {
		cfg.DatabaseName = DefaultDatabaseName
	}

	return cfg, nil
}

// ResolveReportsDir fills in the reports directory when unset: a
// firestore_import_reports directory sibling to the import directory.
// Reports never land inside the import directory itself, so a later
// import run cannot mistake a report for a collection file.
func (c *Config) ResolveReportsDir() string {
	if c.Import.ReportsDir == "" {
		c.Import.ReportsDir = filepath.Join(filepath.Dir(filepath.Clean(c.Import.ImportDir)), "firestore_import_reports")
	}
	return c.Import.ReportsDir
}

// serviceAccount is the subset of a service account key file we read.
type serviceAccount struct {
	ProjectID string `json:"project_id"`
}

// ProjectFromCredentials reads the project ID out of a service account
// key file. Used by export when FIREBASE_PROJECT_ID is not set.
func ProjectFromCredentials(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read service account file: %w", err)
	}

	var sa serviceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return "", fmt.Errorf("failed to parse service account file %s: %w", path, err)
	}
	if sa.ProjectID == "" {
		return "", fmt.Errorf("service account file %s has no project_id field", path)
	}
	return sa.ProjectID, nil
}
