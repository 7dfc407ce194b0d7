// Package importer implements the interactive JSON-to-Firestore import
// pipeline: source discovery, collection selection, confirmation,
// execution, and reporting.
package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dbsmedya/firesnap/internal/snapshot"
)

// ErrNoCollections is returned when the import directory holds no
// importable collection files.
var ErrNoCollections = errors.New("no collection files found in import directory")

// reportFilePrefix marks import report files. They are excluded from
// discovery so a misplaced report is never offered as a collection.
const reportFilePrefix = "import_report_"

// DiscoverCollections scans dir for importable collection files and
// returns their collection names (file base names without .json),
// sorted. The aggregate structure file and import reports are metadata,
// not collection payloads, and are skipped.
func DiscoverCollections(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("import directory not found: %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		if name == snapshot.AggregateFileName || strings.HasPrefix(name, reportFilePrefix) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCollections, dir)
	}

	sort.Strings(names)
	return names, nil
}
