package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"keysheet/keymap"
	"keysheet/persist"
)

func main() {
	if os.Getenv("LOG_LEVEL") == "DEBUG" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	databasePath := flag.String("database", "", "path to the keybind database (default: the user config dir)")
	debug := flag.Bool("debug", false, "log every key event to debug.log")
	flag.Parse()

	file, err := os.OpenFile("debug.log", os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		slog.Error("Couldn't create logger: ", "error", err)
		os.Exit(1)
	}
	defer file.Close()
	log.SetOutput(file)

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	path := *databasePath
	if path == "" {
		path, err = defaultDatabasePath()
		if err != nil {
			slog.Error("Couldn't determine database location: ", "error", err)
			fmt.Println(err)
			os.Exit(1)
		}
	}

	db, err := persist.Connect(path)
	if err != nil {
		slog.Error("Couldn't connect to database: ", "error", err)
		fmt.Println(err)
		os.Exit(1)
	}
	defer db.Close()

	m, err := newKeysheet(db, keymap.Load(), *debug)
	if err != nil {
		slog.Error("Couldn't load keybinds: ", "error", err)
		fmt.Println(err)
		os.Exit(1)
	}

	finalModel, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		message := fmt.Sprintf("Bubbletea error: %v", err)
		slog.Error(message)
		fmt.Println(message)
		os.Exit(1)
	}

	err = finalModel.(*keysheet).fatalError
	if err != nil {
		message := fmt.Sprintf("Program exited with fatal error: %v", err)
		fmt.Println(message)
		os.Exit(1)
	}

	slog.Info("Exited gracefully")
	os.Exit(0)
}

func defaultDatabasePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("couldn't determine config dir: %w", err)
	}

	dir := filepath.Join(configDir, "keysheet")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("couldn't create %q: %w", dir, err)
	}

	return filepath.Join(dir, "keysheet.db"), nil
}
