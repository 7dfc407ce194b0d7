package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dbsmedya/firesnap/internal/config"
	"github.com/dbsmedya/firesnap/internal/database"
	"github.com/dbsmedya/firesnap/internal/logger"
	"github.com/dbsmedya/firesnap/internal/snapshot"
)

// Importer writes collection files to the target backend, or simulates
// doing so in dry-run mode.
type Importer struct {
	backend database.Backend
	cfg     *config.Config
	log     *logger.Logger
}

// New creates an Importer.
func New(backend database.Backend, cfg *config.Config, log *logger.Logger) *Importer {
	return &Importer{backend: backend, cfg: cfg, log: log}
}

// Run processes the selected collections sequentially and returns the
// accumulated report. Per-collection and per-document failures are
// recorded in the report; they never abort the remaining work.
func (imp *Importer) Run(ctx context.Context, selected []string) *Report {
	report := &Report{
		Timestamp:     time.Now(),
		TargetProject: imp.cfg.ProjectID,
		DryRun:        imp.cfg.Import.DryRun,
	}
	if !imp.cfg.UsesDefaultDatabase() {
		report.DatabaseName = imp.cfg.DatabaseName
	}

	for _, name := range selected {
		result := imp.importCollection(ctx, name)
		report.Collections = append(report.Collections, result)

		imp.log.Infow("Collection import finished",
			"collection", name,
			"attempted", result.Attempted,
			"succeeded", result.Succeeded,
			"failed", result.Failed,
			"dry_run", imp.cfg.Import.DryRun,
		)
	}

	return report
}

// importCollection processes one collection file document by document.
func (imp *Importer) importCollection(ctx context.Context, name string) CollectionResult {
	result := CollectionResult{Name: name}
	log := imp.log.WithCollection(name)

	path := filepath.Join(imp.cfg.Import.ImportDir, name+".json")
	docs, err := LoadCollectionFile(path)
	if err != nil {
		log.Errorw("Failed to load collection file", "path", path, "error", err)
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	for _, raw := range docs {
		result.Attempted++

		doc, err := decodeDocument(raw)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			log.Warnw("Skipping malformed document", "error", err)
			continue
		}

		if imp.cfg.Import.DryRun {
			result.Succeeded++
			log.Debugw("Would import document", "document", doc.ID)
			continue
		}

		if err := imp.backend.WriteDocument(ctx, name, doc.ID, snapshot.DecodeData(doc.Data)); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			log.Warnw("Failed to write document", "document", doc.ID, "error", err)
			continue
		}
		result.Succeeded++
	}

	return result
}

// collectionFile is the wrapper shape produced by export.
type collectionFile struct {
	SampleDocuments []json.RawMessage `json:"sample_documents"`
}

// LoadCollectionFile parses a collection file into its raw documents.
// Both the exported wrapper shape ({"sample_documents": [...]}) and a
// bare document array are accepted. Documents stay raw so one
// malformed document fails alone, not the whole file.
func LoadCollectionFile(path string) ([]json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection file: %w", err)
	}

	var wrapper collectionFile
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.SampleDocuments != nil {
		return wrapper.SampleDocuments, nil
	}

	var bare []json.RawMessage
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("invalid collection file format: %s (expected sample_documents wrapper or document array)", filepath.Base(path))
}

// decodeDocument validates and decodes one raw document.
func decodeDocument(raw json.RawMessage) (snapshot.Document, error) {
	var doc snapshot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return snapshot.Document{}, fmt.Errorf("malformed document: %v", err)
	}
	if doc.ID == "" {
		return snapshot.Document{}, errors.New("malformed document: missing id")
	}
	if doc.Data == nil {
		return snapshot.Document{}, fmt.Errorf("malformed document %s: missing data", doc.ID)
	}
	return doc, nil
}
