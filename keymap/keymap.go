// Package keymap resolves the user's key configuration into the motion set
// the dispatcher matches key sequences against, and canonicalises captured
// key chords into display labels.
package keymap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"keysheet/meta"
)

// Keymap maps logical actions to key strokes. Strokes are tea.KeyMsg.String()
// values ("k", "G", " ", "ctrl+d", ...). Left/right accept several keys
// because vim's word motions all collapse to column movement in a two-column
// table.
type Keymap struct {
	Up    string   `toml:"up"`
	Down  string   `toml:"down"`
	Left  []string `toml:"left"`
	Right []string `toml:"right"`

	GotoTop    string `toml:"goto_top"` // pressed twice, vim's gg
	GotoBottom string `toml:"goto_bottom"`

	InsertMode  string `toml:"insert_mode"`
	SearchMode  string `toml:"search_mode"`
	CommandMode string `toml:"command_mode"`

	Undo         string `toml:"undo"`
	DeleteLeader string `toml:"delete_leader"` // dd / d+down / d+up
	NewRowBelow  string `toml:"new_row_below"`
	NewRowAbove  string `toml:"new_row_above"`

	Leader      string `toml:"leader"`
	GroupFilter string `toml:"group_filter"` // <leader>f
	ExportMenu  string `toml:"export_menu"`  // <leader>e
	ImportMenu  string `toml:"import_menu"`  // <leader>i
}

func Default() Keymap {
	return Keymap{
		Up:    "k",
		Down:  "j",
		Left:  []string{"h", "b"},
		Right: []string{"l", "w", "e"},

		GotoTop:    "g",
		GotoBottom: "G",

		InsertMode:  "i",
		SearchMode:  "/",
		CommandMode: ":",

		Undo:         "u",
		DeleteLeader: "d",
		NewRowBelow:  "o",
		NewRowAbove:  "O",

		Leader:      meta.LEADER,
		GroupFilter: "f",
		ExportMenu:  "e",
		ImportMenu:  "i",
	}
}

// ConfigPath returns the keymap file location inside the user config dir.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("couldn't determine config dir: %w", err)
	}

	return filepath.Join(configDir, "keysheet", "keymap.toml"), nil
}

// Load reads the keymap config, writing the defaults on first run.
// An unreadable or unparsable file falls back to the defaults with a
// logged warning rather than failing startup.
func Load() Keymap {
	path, err := ConfigPath()
	if err != nil {
		slog.Warn("Using default keymap", "error", err)
		return Default()
	}

	return LoadFrom(path)
}

func LoadFrom(path string) Keymap {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		keymap := Default()
		if writeErr := writeDefault(path, keymap); writeErr != nil {
			slog.Warn("Couldn't write default keymap", "error", writeErr)
		}

		return keymap
	}
	if err != nil {
		slog.Warn("Couldn't read keymap, using defaults", "error", err)
		return Default()
	}

	keymap := Default()
	if err := toml.Unmarshal(data, &keymap); err != nil {
		slog.Warn("Couldn't parse keymap, using defaults", "error", err)
		return Default()
	}

	keymap.fillUnset()

	return keymap
}

func writeDefault(path string, keymap Keymap) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(keymap)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// A config that sets some actions keeps engine defaults for the rest.
func (km *Keymap) fillUnset() {
	defaults := Default()

	stringFields := []struct {
		field    *string
		fallback string
	}{
		{&km.Up, defaults.Up},
		{&km.Down, defaults.Down},
		{&km.GotoTop, defaults.GotoTop},
		{&km.GotoBottom, defaults.GotoBottom},
		{&km.InsertMode, defaults.InsertMode},
		{&km.SearchMode, defaults.SearchMode},
		{&km.CommandMode, defaults.CommandMode},
		{&km.Undo, defaults.Undo},
		{&km.DeleteLeader, defaults.DeleteLeader},
		{&km.NewRowBelow, defaults.NewRowBelow},
		{&km.NewRowAbove, defaults.NewRowAbove},
		{&km.Leader, defaults.Leader},
		{&km.GroupFilter, defaults.GroupFilter},
		{&km.ExportMenu, defaults.ExportMenu},
		{&km.ImportMenu, defaults.ImportMenu},
	}

	for _, f := range stringFields {
		if *f.field == "" {
			*f.field = f.fallback
		}
	}

	if len(km.Left) == 0 {
		km.Left = defaults.Left
	}
	if len(km.Right) == 0 {
		km.Right = defaults.Right
	}
}
