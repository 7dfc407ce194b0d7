package config

import (
	"errors"
	"path/filepath"
)

// ProductionCredentialName is the reserved service account filename
// that imports refuse to run with. The check is hard-coded on purpose:
// no environment variable or flag can bypass it.
const ProductionCredentialName = "prod.json"

// ErrProductionCredential is returned when the import pipeline is
// configured with the production service account file.
var ErrProductionCredential = errors.New(
	"SAFETY CHECK FAILED: cannot use '" + ProductionCredentialName + "' service account for imports; " +
		"this prevents accidental writes to production - use a different service account file")

// IsProductionCredential reports whether the credential path names the
// reserved production service account. The match is exact and
// case-sensitive, on the base name only.
func IsProductionCredential(path string) bool {
	if path == "" {
		return false
	}
	return filepath.Base(path) == ProductionCredentialName
}
