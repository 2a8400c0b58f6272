package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"keysheet/meta"
	"keysheet/persist"
)

// executeCommand runs a finished command line. The first token selects the
// command, the rest are its arguments.
func (m *keysheet) executeCommand(line string) (tea.Model, tea.Cmd) {
	m.switchMode(meta.NORMALMODE)

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return m, nil
	}

	slog.Debug("Executing command", "line", line)

	switch tokens[0] {
	case "w":
		if len(tokens) > 1 {
			group := strings.Join(tokens[1:], " ")
			if !m.store.HasGroup(group) {
				m.setError(fmt.Sprintf("No such group: %s", group))
				return m, nil
			}

			if err := m.saveGroup(group); err != nil {
				m.setError(err.Error())
				return m, nil
			}

			m.setStatus(fmt.Sprintf("Saved group %s.", group))
			return m, nil
		}

		if err := m.saveGroup(m.activeGroup); err != nil {
			m.setError(err.Error())
			return m, nil
		}

		m.dirty = false
		m.setStatus("Saved.")
		return m, nil

	case "wq":
		if err := m.saveGroup(m.activeGroup); err != nil {
			m.setError(err.Error())
			return m, nil
		}

		return m, tea.Quit

	case "q":
		if m.dirty {
			m.setError("Unsaved changes. Use :q! to discard them.")
			return m, nil
		}

		return m, tea.Quit

	case "q!":
		return m, tea.Quit

	case "help":
		m.switchMode(meta.HELPMODE)
		return m, nil

	case "new":
		if len(tokens) < 2 {
			m.setError("Usage: new <group>")
			return m, nil
		}

		group := strings.Join(tokens[1:], " ")
		if m.store.HasGroup(group) {
			m.setError(fmt.Sprintf("Group already exists: %s", group))
			return m, nil
		}

		m.store.AddGroup(group)
		m.activeGroup = group
		m.searchQuery = ""
		m.searchInput.Reset()
		m.dirty = true
		m.refilter()
		m.setStatus(fmt.Sprintf("Created group %s.", group))
		return m, nil
	}

	m.setError(fmt.Sprintf("Not a command: %s", tokens[0]))
	return m, nil
}

func (m *keysheet) saveGroup(group string) error {
	return m.db.SaveGroup(group, m.groupEntries(group))
}

func (m *keysheet) groupEntries(group string) []persist.Entry {
	entries := []persist.Entry{}
	for _, record := range m.store.RecordsOf(group) {
		entries = append(entries, persist.Entry{
			Chord:       record.Chord,
			Description: record.Description,
		})
	}

	return entries
}
