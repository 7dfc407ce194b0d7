package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/firesnap/internal/config"
	"github.com/dbsmedya/firesnap/internal/database"
	"github.com/dbsmedya/firesnap/internal/importer"
	"github.com/dbsmedya/firesnap/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import collection JSON files into a Firestore project",
	Long: `Import discovers collection JSON files in the import directory,
presents an interactive selection menu, and after explicit confirmation
writes each document to the target project under its original document
ID (an upsert: re-importing the same file is idempotent).

Safety:
  - A service account file named 'prod.json' is rejected outright.
    This lockout is hard-coded and cannot be bypassed by configuration.
  - Dry-run mode validates and reports without writing anything.
  - Per-document failures are recorded and skipped, never fatal.

A timestamped report is written to a reports directory sibling to the
import directory after every executed run.

Configuration comes from the environment (or an env file):
  FIREBASE_PROJECT_ID            target project (required)
  FIREBASE_SERVICE_ACCOUNT_PATH  service account key file (required)
  FIREBASE_DATABASE_NAME         database instance (default "(default)")
  IMPORT_DIR                     source directory (default firestore_import)
  DRY_RUN                        set "true" to simulate

Example:
  FIREBASE_PROJECT_ID=my-sandbox firesnap import --dry-run`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Simulate the import without writing to the backend")
	importCmd.Flags().StringVarP(&importDir, "import-dir", "i", "",
		"Override import source directory")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetEnvFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		0, "", overrides.ImportDir, overrides.DryRun)
	cfg.ResolveReportsDir()

	// Pre-flight: configuration and the production lockout are checked
	// before any connection is opened.
	if err := cfg.ValidateImport(); err != nil {
		color.Error.Println(err.Error())
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	available, err := importer.DiscoverCollections(cfg.Import.ImportDir)
	if err != nil {
		return err
	}

	// Selection and confirmation happen before connecting, so quitting
	// costs nothing.
	selection, err := importer.PromptSelection(os.Stdin, os.Stdout, available)
	if err != nil {
		return err
	}
	if selection.Cancelled || len(selection.Names) == 0 {
		color.Info.Println("Import cancelled. No action taken.")
		return nil
	}

	summary := importer.Summary{
		TargetProject: cfg.ProjectID,
		DryRun:        cfg.Import.DryRun,
		Collections:   selection.Names,
	}
	if !cfg.UsesDefaultDatabase() {
		summary.DatabaseName = cfg.DatabaseName
	}

	confirmed, err := importer.Confirm(os.Stdin, os.Stdout, summary)
	if err != nil {
		return err
	}
	if !confirmed {
		color.Info.Println("Import cancelled. No action taken.")
		return nil
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg, cfg.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to connect to Firestore: %w", err)
	}
	defer client.Close()

	log.Infow("Connected to Firestore",
		"project", cfg.ProjectID,
		"database", cfg.DatabaseName,
		"dry_run", cfg.Import.DryRun,
	)

	imp := importer.New(client, cfg, log)
	report := imp.Run(ctx, selection.Names)

	reportPath, err := report.Write(cfg.Import.ReportsDir)
	if err != nil {
		return fmt.Errorf("failed to write import report: %w", err)
	}

	// Display results
	mode := "Import"
	if report.DryRun {
		mode = "Import simulation"
	}
	fmt.Printf("\n=== %s Complete ===\n", mode)
	fmt.Printf("Target project: %s\n", report.TargetProject)
	if report.DatabaseName != "" {
		fmt.Printf("Database: %s\n", report.DatabaseName)
	}
	fmt.Printf("Collections processed: %d\n", len(report.Collections))
	fmt.Printf("Documents: %d attempted, %d succeeded, %d failed\n",
		report.TotalAttempted(), report.TotalSucceeded(), report.TotalFailed())
	fmt.Printf("Report: %s\n", reportPath)

	if report.TotalFailed() > 0 {
		color.Warn.Println("Some documents failed to import; see the report for details.")
	}

	// Partial per-document failure is reported, not treated as a run
	// failure.
	return nil
}
