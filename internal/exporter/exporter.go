// Package exporter implements the read-only database snapshot pipeline.
package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dbsmedya/firesnap/internal/config"
	"github.com/dbsmedya/firesnap/internal/database"
	"github.com/dbsmedya/firesnap/internal/logger"
	"github.com/dbsmedya/firesnap/internal/snapshot"
)

// estimateCap bounds the document count estimation per collection.
// Counts at the cap are reported as "100+".
const estimateCap = 100

// Result summarizes an export run.
type Result struct {
	ProjectID         string
	OutputDir         string
	TotalCollections  int
	FailedCollections int
	Duration          time.Duration
}

// Exporter produces a bounded JSON snapshot of a database's structure
// and sample data. It never writes to the backend.
type Exporter struct {
	backend   database.Backend
	projectID string
	cfg       *config.ExportConfig
	log       *logger.Logger
}

// New creates an Exporter.
func New(backend database.Backend, projectID string, cfg *config.ExportConfig, log *logger.Logger) *Exporter {
	return &Exporter{
		backend:   backend,
		projectID: projectID,
		cfg:       cfg,
		log:       log,
	}
}

// Run exports every root collection to one JSON file each, plus the
// aggregate structure file. A collection that fails to export is
// recorded in the aggregate and the run continues; only output
// directory or collection listing failures are fatal.
func (e *Exporter) Run(ctx context.Context) (*snapshot.DatabaseStructure, *Result, error) {
	start := time.Now()

	if err := os.MkdirAll(e.cfg.OutputDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory %s: %w", e.cfg.OutputDir, err)
	}

	collections, err := e.backend.ListCollections(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list collections: %w", err)
	}

	e.log.Infow("Starting database export",
		"project", e.projectID,
		"collections", len(collections),
		"sample_limit", e.cfg.SampleLimit,
		"output_dir", e.cfg.OutputDir,
	)

	structure := snapshot.NewDatabaseStructure(e.projectID)
	failed := 0

	for _, name := range collections {
		col, err := e.exportCollection(ctx, name)
		if err != nil {
			e.log.Errorw("Failed to export collection", "collection", name, "error", err)
			structure.AddError(name, err)
			failed++
			continue
		}

		path := filepath.Join(e.cfg.OutputDir, name+".json")
		if err := snapshot.WriteJSON(path, col); err != nil {
			e.log.Errorw("Failed to write collection file", "collection", name, "error", err)
			structure.AddError(name, err)
			failed++
			continue
		}

		structure.AddCollection(col)
		e.log.Infow("Exported collection", "collection", name, "samples", col.SampleCount)
	}

	aggregatePath := filepath.Join(e.cfg.OutputDir, snapshot.AggregateFileName)
	if err := snapshot.WriteJSON(aggregatePath, structure); err != nil {
		return nil, nil, fmt.Errorf("failed to write aggregate structure: %w", err)
	}

	result := &Result{
		ProjectID:         e.projectID,
		OutputDir:         e.cfg.OutputDir,
		TotalCollections:  structure.TotalCollections(),
		FailedCollections: failed,
		Duration:          time.Since(start),
	}
	return structure, result, nil
}

// exportCollection reads a bounded sample plus an estimated count for
// one collection.
func (e *Exporter) exportCollection(ctx context.Context, name string) (*snapshot.Collection, error) {
	docs, err := e.backend.SampleDocuments(ctx, name, e.cfg.SampleLimit)
	if err != nil {
		return nil, err
	}

	samples := make([]snapshot.Document, 0, len(docs))
	for _, doc := range docs {
		// Empty documents carry no structure worth sampling.
		if len(doc.Data) == 0 {
			continue
		}
		samples = append(samples, snapshot.Document{
			ID:   doc.ID,
			Data: snapshot.EncodeData(doc.Data),
		})
	}

	estimated := e.estimateCount(ctx, name)

	return &snapshot.Collection{
		Name:                   name,
		EstimatedDocumentCount: estimated,
		SampleDocuments:        samples,
		SampleCount:            len(samples),
		ExportedAt:             time.Now(),
	}, nil
}

// estimateCount formats the capped document count. An estimation
// failure degrades to "unknown" rather than failing the collection.
func (e *Exporter) estimateCount(ctx context.Context, name string) string {
	count, capped, err := e.backend.EstimateCount(ctx, name, estimateCap)
	if err != nil {
		e.log.Warnw("Could not estimate document count", "collection", name, "error", err)
		return "unknown"
	}
	if capped {
		return fmt.Sprintf("%d+", count)
	}
	return fmt.Sprintf("%d", count)
}
