package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ncruces/zenity"

	"keysheet/meta"
	"keysheet/persist"
	"keysheet/store"
)

// groupFilterState backs the group switcher popup: a text input whose value
// fuzzy-filters the known group names.
type groupFilterState struct {
	input    textinput.Model
	selected int
}

func newGroupFilterState() groupFilterState {
	input := textinput.New()
	input.Prompt = "> "
	input.Cursor.SetMode(cursor.CursorStatic)

	return groupFilterState{input: input}
}

func (g *groupFilterState) open() {
	g.input.Reset()
	g.input.Focus()
	g.selected = 0
}

// The group names currently matching the filter input, in sorted order.
func (m *keysheet) groupMatches() []string {
	return store.FilterStrings(m.store.KnownGroups(), m.groupFilter.input.Value())
}

func (m *keysheet) handleGroupFilterKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape, tea.KeyCtrlC:
		m.closeGroupFilter()
		return m, nil

	case tea.KeyEnter:
		matches := m.groupMatches()
		if m.groupFilter.selected < len(matches) {
			m.switchGroup(matches[m.groupFilter.selected])
		}
		m.closeGroupFilter()
		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		matches := m.groupMatches()
		if m.groupFilter.selected < len(matches)-1 {
			m.groupFilter.selected++
		}
		return m, nil

	case tea.KeyUp, tea.KeyCtrlP:
		if m.groupFilter.selected > 0 {
			m.groupFilter.selected--
		}
		return m, nil
	}

	before := m.groupFilter.input.Value()

	var cmd tea.Cmd
	m.groupFilter.input, cmd = m.groupFilter.input.Update(message)

	if m.groupFilter.input.Value() != before {
		m.groupFilter.selected = 0
	}

	return m, cmd
}

func (m *keysheet) closeGroupFilter() {
	m.groupFilter.input.Blur()
	m.inputMode = meta.NORMALMODE
}

func (m *keysheet) switchGroup(group string) {
	if group == m.activeGroup {
		return
	}

	m.activeGroup = group
	m.searchQuery = ""
	m.searchInput.Reset()
	m.selectedRow = 0
	m.selectedCol = 0
	m.refilter()
}

// listPickerState backs the fixed-option export and import popups.
type listPickerState struct {
	selected int
}

var exportOptions = []string{"Export active group", "Export all groups"}
var importOptions = []string{"Import (merge into existing)", "Import (replace group)"}

func movePickerSelection(picker *listPickerState, options []string, message tea.KeyMsg) bool {
	switch message.String() {
	case "j", "down":
		if picker.selected < len(options)-1 {
			picker.selected++
		}
		return true

	case "k", "up":
		if picker.selected > 0 {
			picker.selected--
		}
		return true
	}

	return false
}

func (m *keysheet) handleExportKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyEscape || message.Type == tea.KeyCtrlC {
		m.inputMode = meta.NORMALMODE
		return m, nil
	}

	if movePickerSelection(&m.exportMenu, exportOptions, message) {
		return m, nil
	}

	if message.Type != tea.KeyEnter {
		return m, nil
	}

	choice := m.exportMenu.selected
	m.inputMode = meta.NORMALMODE

	if choice == 0 {
		document := persist.GroupDocument{
			Group:   m.activeGroup,
			Entries: m.groupEntries(m.activeGroup),
		}
		return m, exportGroupCmd(document)
	}

	documents := []persist.GroupDocument{}
	for _, group := range m.store.KnownGroups() {
		documents = append(documents, persist.GroupDocument{
			Group:   group,
			Entries: m.groupEntries(group),
		})
	}
	return m, exportAllCmd(documents)
}

func (m *keysheet) handleImportKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyEscape || message.Type == tea.KeyCtrlC {
		m.inputMode = meta.NORMALMODE
		return m, nil
	}

	if movePickerSelection(&m.importMenu, importOptions, message) {
		return m, nil
	}

	if message.Type != tea.KeyEnter {
		return m, nil
	}

	replace := m.importMenu.selected == 1
	m.inputMode = meta.NORMALMODE

	return m, importCmd(replace)
}

func (m *keysheet) handleHelpKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "esc", "ctrl+c", "enter", "q":
		m.inputMode = meta.NORMALMODE
	}

	return m, nil
}

// applyImport folds a loaded group file into the store and makes its group
// the active one.
func (m *keysheet) applyImport(message meta.ImportLoadedMsg) {
	if message.Err != nil {
		if errors.Is(message.Err, zenity.ErrCanceled) {
			m.setStatus("Import cancelled.")
		} else {
			m.setError(fmt.Sprintf("Import failed: %v", message.Err))
		}
		return
	}

	entries, ok := message.Data.([]persist.Entry)
	if !ok {
		m.setError("Import failed: malformed payload.")
		return
	}

	m.history.Push(m.store.Snapshot())

	group := message.Group
	m.store.AddGroup(group)
	if message.Replace {
		m.store.RemoveGroupRecords(group)
	}

	// Merging skips entries the group already has verbatim
	existing := map[store.Record]struct{}{}
	for _, record := range m.store.RecordsOf(group) {
		existing[record] = struct{}{}
	}

	added := 0
	for _, entry := range entries {
		record := store.Record{
			Chord:       entry.Chord,
			Description: entry.Description,
			Group:       group,
		}
		if _, ok := existing[record]; ok {
			continue
		}

		m.store.Append(record)
		added++
	}

	m.activeGroup = group
	m.searchQuery = ""
	m.searchInput.Reset()
	m.selectedRow = 0
	m.dirty = true
	m.refilter()

	m.setStatus(fmt.Sprintf("Imported %d keybinds into %s.", added, group))
}

var jsonFilter = zenity.FileFilter{
	Name:     "Group files",
	Patterns: []string{"*.json"},
	CaseFold: true,
}

func exportGroupCmd(document persist.GroupDocument) tea.Cmd {
	return func() tea.Msg {
		path, err := zenity.SelectFileSave(
			zenity.Filename(document.Group+".json"),
			zenity.FileFilters{jsonFilter},
			zenity.ConfirmOverwrite(),
		)
		if errors.Is(err, zenity.ErrCanceled) {
			return meta.ExportDoneMsg{Message: "Export cancelled."}
		}
		if err != nil {
			return meta.ExportDoneMsg{Err: err}
		}

		if err := persist.WriteGroupFile(path, document.Group, document.Entries); err != nil {
			return meta.ExportDoneMsg{Err: err}
		}

		return meta.ExportDoneMsg{Message: fmt.Sprintf("Exported %s to %s.", document.Group, path)}
	}
}

func exportAllCmd(documents []persist.GroupDocument) tea.Cmd {
	return func() tea.Msg {
		directory, err := zenity.SelectFile(zenity.Directory())
		if errors.Is(err, zenity.ErrCanceled) {
			return meta.ExportDoneMsg{Message: "Export cancelled."}
		}
		if err != nil {
			return meta.ExportDoneMsg{Err: err}
		}

		for _, document := range documents {
			path := filepath.Join(directory, document.Group+".json")
			if err := persist.WriteGroupFile(path, document.Group, document.Entries); err != nil {
				return meta.ExportDoneMsg{Err: err}
			}
		}

		return meta.ExportDoneMsg{Message: fmt.Sprintf("Exported %d groups to %s.", len(documents), directory)}
	}
}

func importCmd(replace bool) tea.Cmd {
	return func() tea.Msg {
		path, err := zenity.SelectFile(zenity.FileFilters{jsonFilter})
		if err != nil {
			return meta.ImportLoadedMsg{Replace: replace, Err: err}
		}

		document, err := persist.ReadGroupFile(path)
		if err != nil {
			return meta.ImportLoadedMsg{Replace: replace, Err: err}
		}

		return meta.ImportLoadedMsg{
			Group:   document.Group,
			Data:    document.Entries,
			Replace: replace,
		}
	}
}
