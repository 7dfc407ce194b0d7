package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/firesnap/internal/config"
	"github.com/dbsmedya/firesnap/internal/importer"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and run pre-flight checks",
	Long: `Validate checks the environment configuration for both pipelines
without opening any backend connection.

Checks performed:
  - Required settings and credential file presence
  - Production service account lockout
  - Import directory discovery (qualifying collection files)
  - Reports directory separation from the import directory

Example:
  firesnap validate --env-file sandbox.env`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetEnvFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, 0, "", "", false)
	cfg.ResolveReportsDir()

	fmt.Printf("\n=== Configuration Validation ===\n")
	fmt.Printf("Credential file: %s\n", orUnset(cfg.ServiceAccountPath))
	fmt.Printf("Project: %s\n", orUnset(cfg.ProjectID))
	fmt.Printf("Database: %s\n\n", cfg.DatabaseName)

	hasErrors := false

	fmt.Println("--- Export ---")
	if err := cfg.ValidateExport(); err != nil {
		fmt.Printf("❌ %v\n\n", err)
		hasErrors = true
	} else {
		fmt.Printf("✅ Export configuration valid (sample limit %d, output %s)\n\n",
			cfg.Export.SampleLimit, cfg.Export.OutputDir)
	}

	fmt.Println("--- Import ---")
	if err := cfg.ValidateImport(); err != nil {
		fmt.Printf("❌ %v\n\n", err)
		hasErrors = true
	} else if names, err := importer.DiscoverCollections(cfg.Import.ImportDir); err != nil {
		if errors.Is(err, importer.ErrNoCollections) {
			fmt.Printf("❌ %v\n\n", err)
		} else {
			fmt.Printf("❌ Import directory check failed: %v\n\n", err)
		}
		hasErrors = true
	} else {
		fmt.Printf("✅ Import configuration valid (%d collection files in %s, reports to %s)\n\n",
			len(names), cfg.Import.ImportDir, cfg.Import.ReportsDir)
	}

	if hasErrors {
		return fmt.Errorf("validation failed for one or more pipelines")
	}

	fmt.Println("=== Validation Complete ===")
	fmt.Println("✅ All checks passed")
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
