package importer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Selection is the typed outcome of parsing a selection input line.
type Selection struct {
	Cancelled bool
	Names     []string
}

// ParseSelection interprets one line of selection input against the
// available collection list: a comma-separated list of 1-based
// indices, "all", or "quit". It is pure string parsing, independent of
// any terminal.
func ParseSelection(input string, available []string) (Selection, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	switch trimmed {
	case "quit":
		return Selection{Cancelled: true}, nil
	case "all":
		names := make([]string, len(available))
		copy(names, available)
		return Selection{Names: names}, nil
	case "":
		return Selection{}, fmt.Errorf("empty selection")
	}

	seen := make(map[int]bool)
	var names []string
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		index, err := strconv.Atoi(part)
		if err != nil {
			return Selection{}, fmt.Errorf("invalid selection %q: enter numbers separated by commas, 'all', or 'quit'", part)
		}
		if index < 1 || index > len(available) {
			return Selection{}, fmt.Errorf("invalid selection: %d is out of range 1-%d", index, len(available))
		}
		if seen[index] {
			continue
		}
		seen[index] = true
		names = append(names, available[index-1])
	}

	return Selection{Names: names}, nil
}

// PromptSelection renders the collection menu on w and reads selection
// lines from r until one parses cleanly or the input is exhausted.
// Invalid input re-prompts; it never silently skips.
func PromptSelection(r io.Reader, w io.Writer, available []string) (Selection, error) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available collections for import:")

	width := 0
	for _, name := range available {
		if l := runewidth.StringWidth(name); l > width {
			width = l
		}
	}
	for i, name := range available {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, runewidth.FillRight(name, width))
	}

	fmt.Fprintf(w, "\nEnter collection numbers (1-%d) separated by commas,\n", len(available))
	fmt.Fprintln(w, "or 'all' to import all collections, or 'quit' to exit:")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Selection{}, fmt.Errorf("failed to read selection: %w", err)
			}
			// Input closed without a valid selection.
			return Selection{Cancelled: true}, nil
		}

		sel, err := ParseSelection(scanner.Text(), available)
		if err != nil {
			fmt.Fprintln(w, color.Error.Render(err.Error()))
			continue
		}
		return sel, nil
	}
}
