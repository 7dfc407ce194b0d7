package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dbsmedya/firesnap/internal/snapshot"
)

// CollectionResult records the per-collection outcome of an import run.
type CollectionResult struct {
	Name      string   `json:"name"`
	Attempted int      `json:"attempted"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// Report is the immutable record of one import run. It is written once
// after all selected collections are processed and never modified.
type Report struct {
	Timestamp     time.Time          `json:"timestamp"`
	TargetProject string             `json:"target_project"`
	DatabaseName  string             `json:"database_name,omitempty"`
	DryRun        bool               `json:"dry_run"`
	Collections   []CollectionResult `json:"collections"`
}

// TotalAttempted sums attempted documents across collections.
func (r *Report) TotalAttempted() int {
	total := 0
	for _, c := range r.Collections {
		total += c.Attempted
	}
	return total
}

// TotalSucceeded sums succeeded documents across collections.
func (r *Report) TotalSucceeded() int {
	total := 0
	for _, c := range r.Collections {
		total += c.Succeeded
	}
	return total
}

// TotalFailed sums failed documents across collections.
func (r *Report) TotalFailed() int {
	total := 0
	for _, c := range r.Collections {
		total += c.Failed
	}
	return total
}

// Write persists the report to reportsDir under a timestamped name and
// returns the file path. The reports directory is created if needed;
// it must never be the import source directory.
func (r *Report) Write(reportsDir string) (string, error) {
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory %s: %w", reportsDir, err)
	}

	name := fmt.Sprintf("%s%s.json", reportFilePrefix, r.Timestamp.Format("20060102_150405"))
	path := filepath.Join(reportsDir, name)
	if err := snapshot.WriteJSON(path, r); err != nil {
		return "", err
	}
	return path, nil
}
