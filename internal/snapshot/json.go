package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes v to path as pretty-printed UTF-8 JSON with a
// trailing newline. Snapshot files are meant to be read and reviewed
// by humans before being imported anywhere.
func WriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
