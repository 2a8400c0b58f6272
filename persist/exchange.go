package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// The document shape of export/import files: one group per file.
type GroupDocument struct {
	Group   string  `json:"application"`
	Entries []Entry `json:"keybinds"`
}

func WriteGroupFile(path string, group string, entries []Entry) error {
	document := GroupDocument{Group: group, Entries: entries}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't serialise group %q: %w", group, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("couldn't write %q: %w", path, err)
	}

	return nil
}

func ReadGroupFile(path string) (GroupDocument, error) {
	var document GroupDocument

	data, err := os.ReadFile(path)
	if err != nil {
		return document, fmt.Errorf("couldn't read %q: %w", path, err)
	}

	if err := json.Unmarshal(data, &document); err != nil {
		return document, fmt.Errorf("couldn't parse %q: %w", path, err)
	}

	if document.Group == "" {
		return document, errors.New("import file names no application")
	}

	return document, nil
}
