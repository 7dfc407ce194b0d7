package importer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

// Summary describes what an import run is about to do. It is printed
// verbatim before the confirmation prompt.
type Summary struct {
	TargetProject string
	DatabaseName  string // empty for the default database
	DryRun        bool
	Collections   []string
}

// ParseConfirmation interprets one line of confirmation input.
// ok is false for input that is neither affirmative nor negative.
func ParseConfirmation(input string) (confirmed, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y":
		return true, true
	case "no", "n":
		return false, true
	default:
		return false, false
	}
}

// Confirm prints the import summary and asks for explicit approval.
// Dry-run proceeds without prompting since no write can happen. Any
// non-affirmative answer declines.
func Confirm(r io.Reader, w io.Writer, s Summary) (bool, error) {
	mode := "LIVE IMPORT"
	if s.DryRun {
		mode = "DRY-RUN (no changes will be made)"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Import Summary:")
	fmt.Fprintf(w, "  Target Project: %s\n", s.TargetProject)
	if s.DatabaseName != "" {
		fmt.Fprintf(w, "  Database: %s\n", s.DatabaseName)
	}
	fmt.Fprintf(w, "  Mode: %s\n", mode)
	fmt.Fprintf(w, "  Collections to import (%d):\n", len(s.Collections))
	for _, name := range s.Collections {
		fmt.Fprintf(w, "    - %s\n", name)
	}

	if s.DryRun {
		return true, nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.Warn.Render(fmt.Sprintf("This will write data to the '%s' project. Existing documents with matching IDs are overwritten.", s.TargetProject)))

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "Proceed with import? (yes/no): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("failed to read confirmation: %w", err)
			}
			return false, nil
		}

		if confirmed, ok := ParseConfirmation(scanner.Text()); ok {
			return confirmed, nil
		}
		fmt.Fprintln(w, "Please enter 'yes' or 'no'.")
	}
}
