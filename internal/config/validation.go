package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// ValidateExport checks the configuration required by the export pipeline.
func (c *Config) ValidateExport() error {
	var errors ValidationErrors

	errors = append(errors, c.validateCredentials()...)

	if c.Export.SampleLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "export.sample_limit",
			Message: "sample limit must be positive (set " + EnvSampleLimit + ")",
		})
	}
	if c.Export.OutputDir == "" {
		errors = append(errors, ValidationError{
			Field:   "export.output_dir",
			Message: "output directory is required (set " + EnvOutputDir + ")",
		})
	}

	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

// ValidateImport checks the configuration required by the import
// pipeline, including the production credential lockout. It never
// opens a backend connection.
func (c *Config) ValidateImport() error {
	// Lockout first: it wins over every other configuration problem.
	// This is deliberately not a ValidationError; it is a hard stop,
	// not a fixable setting.
	if IsProductionCredential(c.ServiceAccountPath) {
		return ErrProductionCredential
	}

	var errors ValidationErrors

	if c.ProjectID == "" {
		errors = append(errors, ValidationError{
			Field:   "project_id",
			Message: "target project ID is required (set " + EnvProjectID + ")",
		})
	}

	errors = append(errors, c.validateCredentials()...)

	if c.Import.ImportDir == "" {
		errors = append(errors, ValidationError{
			Field:   "import.import_dir",
			Message: "import directory is required (set " + EnvImportDir + ")",
		})
	}

	// The reports directory must stay distinct from the import source
	// directory; a report written there would be offered as a
	// collection on the next run.
	if c.Import.ReportsDir != "" && c.Import.ImportDir != "" &&
		filepath.Clean(c.Import.ReportsDir) == filepath.Clean(c.Import.ImportDir) {
		errors = append(errors, ValidationError{
			Field:   "import.reports_dir",
			Message: "reports directory must differ from the import directory",
		})
	}

	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateCredentials() ValidationErrors {
	var errors ValidationErrors

	if c.ServiceAccountPath == "" {
		errors = append(errors, ValidationError{
			Field:   "service_account_path",
			Message: "service account path is required (set " + EnvServiceAccountPath + ")",
		})
		return errors
	}

	info, err := os.Stat(c.ServiceAccountPath)
	if err != nil {
		errors = append(errors, ValidationError{
			Field:   "service_account_path",
			Message: fmt.Sprintf("service account file not found: %s", c.ServiceAccountPath),
		})
		return errors
	}
	if info.IsDir() {
		errors = append(errors, ValidationError{
			Field:   "service_account_path",
			Message: fmt.Sprintf("service account path is a directory: %s", c.ServiceAccountPath),
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
