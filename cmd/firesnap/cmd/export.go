package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/firesnap/internal/config"
	"github.com/dbsmedya/firesnap/internal/database"
	"github.com/dbsmedya/firesnap/internal/exporter"
	"github.com/dbsmedya/firesnap/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export database structure and sample data to JSON files",
	Long: `Export connects to the source Firestore project and writes a bounded
snapshot of its structure: one JSON file per root collection with up to
SAMPLE_LIMIT sample documents each, plus an aggregate
complete_database_structure.json file.

The export is strictly read-only: no write ever reaches the source
database. A collection that fails to export is recorded in the
aggregate file and the run continues.

Configuration comes from the environment (or an env file):
  FIREBASE_SERVICE_ACCOUNT_PATH  service account key file (required)
  FIREBASE_PROJECT_ID            project (default: from the key file)
  SAMPLE_LIMIT                   documents sampled per collection (default 5)
  OUTPUT_DIR                     destination directory (default firestore_export)

Example:
  FIREBASE_SERVICE_ACCOUNT_PATH=staging.json firesnap export --sample-limit 10`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVarP(&sampleLimit, "sample-limit", "n", 0,
		"Override max documents sampled per collection")
	exportCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "",
		"Override export destination directory")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetEnvFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.SampleLimit, overrides.OutputDir, "", false)

	if err := cfg.ValidateExport(); err != nil {
		return err
	}

	// The source project can come from the key file itself.
	projectID := cfg.ProjectID
	if projectID == "" {
		projectID, err = config.ProjectFromCredentials(cfg.ServiceAccountPath)
		if err != nil {
			return fmt.Errorf("no project configured and none found in credentials: %w", err)
		}
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg, projectID)
	if err != nil {
		return fmt.Errorf("failed to connect to Firestore: %w", err)
	}
	defer client.Close()

	log.Infow("Connected to Firestore", "project", projectID)

	exp := exporter.New(client, projectID, &cfg.Export, log)
	_, result, err := exp.Run(ctx)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	// Display results
	fmt.Printf("\n=== Export Complete ===\n")
	fmt.Printf("Project: %s\n", result.ProjectID)
	fmt.Printf("Duration: %s\n", result.Duration)
	fmt.Printf("Collections: %d\n", result.TotalCollections)
	fmt.Printf("Output directory: %s\n", result.OutputDir)

	if result.FailedCollections > 0 {
		fmt.Printf("\nCollections failed: %d (see %s)\n",
			result.FailedCollections, "complete_database_structure.json")
	}

	return nil
}
