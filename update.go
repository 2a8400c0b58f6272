package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"keysheet/meta"
)

func (m *keysheet) Init() tea.Cmd {
	slog.Info("Initialised", "group", m.activeGroup, "records", m.store.Len())

	return textinput.Blink
}

func (m *keysheet) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.QuitMsg:
		return m, tea.Quit

	case error:
		slog.Debug(fmt.Sprintf("Error: %v", message))
		m.setError(message.Error())
		return m, nil

	case meta.StatusMsg:
		m.setStatus(message.Message)
		return m, nil

	case meta.FatalErrorMsg:
		slog.Error(fmt.Sprintf("Fatal error: %v", message.Error))
		m.fatalError = message.Error
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.viewWidth = message.Width
		m.viewHeight = message.Height

		inputWidth := message.Width - 2
		m.commandInput.Width = inputWidth
		m.searchInput.Width = inputWidth

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case meta.SwitchModeMsg:
		m.switchMode(message.InputMode)
		return m, nil

	case meta.NavigateMsg:
		m.navigate(message.Direction)
		return m, nil

	case meta.JumpRowMsg:
		m.jumpRow(message.ToBottom)
		return m, nil

	case meta.DeleteRowsMsg:
		m.deleteRows(message.Also)
		return m, nil

	case meta.NewRowMsg:
		m.newRow(message.Above)
		return m, nil

	case meta.UndoMsg:
		m.undo()
		return m, nil

	case meta.CommitEditMsg:
		m.commitEdit(m.editInput.Value())
		return m, nil

	case meta.CancelEditMsg:
		m.cancelEdit()
		return m, nil

	case meta.SearchDoneMsg:
		m.finishSearch(message.Clear)
		return m, nil

	case meta.ExecuteCommandMsg:
		return m.executeCommand(m.commandInput.Value())

	case meta.ExportDoneMsg:
		if message.Err != nil {
			m.setError(message.Err.Error())
		} else {
			m.setStatus(message.Message)
		}
		return m, nil

	case meta.ImportLoadedMsg:
		m.applyImport(message)
		return m, nil
	}

	return m, nil
}

// handleKeyMsg is the central dispatcher: it resolves multi-key sequences
// against the motion tries and forwards everything else to whichever input
// currently has focus.
func (m *keysheet) handleKeyMsg(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.debug {
		slog.Debug("Key event", "key", message.String(), "type", message.Type, "alt", message.Alt)
	}

	// The popup modes take a handful of fixed keys and host their own
	// sub-models; they bypass the motion tries entirely.
	switch m.inputMode {
	case meta.GROUPFILTERMODE:
		return m.handleGroupFilterKey(message)

	case meta.EXPORTMODE:
		return m.handleExportKey(message)

	case meta.IMPORTMODE:
		return m.handleImportKey(message)

	case meta.HELPMODE:
		return m.handleHelpKey(message)
	}

	// While recording a chord, every key belongs to the recorder,
	// except escape which cancels the capture
	if m.inputMode == meta.INSERTMODE && m.recorder != nil {
		return m.handleCaptureKey(message)
	}

	// ctrl+c to reset the current motion can't be a motion itself, because
	// then for instance ["g", "ctrl+c"] would be an invalid motion
	if m.inputMode == meta.NORMALMODE && message.Type == tea.KeyCtrlC {
		m.resetCurrentMotion()
		return m, nil
	}

	m.currentMotion = append(m.currentMotion, message.String())

	if !m.motions.ContainsPath(m.inputMode, m.currentMotion) {
		switch m.inputMode {
		case meta.NORMALMODE:
			// A key that cancels a pending sequence is still processed
			// as a motion in its own right
			if len(m.currentMotion) > 1 {
				m.resetCurrentMotion()
				return m.handleKeyMsg(message)
			}

			invalid := m.currentMotion.View()
			m.resetCurrentMotion()
			m.setError(fmt.Sprintf("Invalid motion: %s", invalid))

			return m, nil

		// In the editing modes, a stroke that isn't a motion belongs
		// to the focused input
		case meta.INSERTMODE:
			m.resetCurrentMotion()

			var cmd tea.Cmd
			m.editInput, cmd = m.editInput.Update(message)

			return m, cmd

		case meta.SEARCHMODE:
			m.resetCurrentMotion()
			return m.handleSearchInput(message)

		case meta.COMMANDMODE:
			m.resetCurrentMotion()

			var cmd tea.Cmd
			m.commandInput, cmd = m.commandInput.Update(message)

			return m, cmd
		}
	}

	completedMotionMsg, ok := m.motions.Get(m.inputMode, m.currentMotion)
	if !ok {
		// The current strokes prefix a longer motion, wait for more input
		return m, nil
	}

	m.resetCurrentMotion()

	newModel, cmd := m.Update(completedMotionMsg)
	m = newModel.(*keysheet)

	// The key that entered chord capture is the recorder's ignored frame:
	// it must not be misread as the chord being recorded
	if m.recorder != nil && m.recorder.PendingIgnore() {
		m.recorder.Capture(message)
	}

	return m, cmd
}

func (m *keysheet) handleSearchInput(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Backspace on an already empty query backs out of search mode
	if message.Type == tea.KeyBackspace && m.searchInput.Value() == "" {
		m.finishSearch(true)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(message)

	if m.searchInput.Value() != m.searchQuery {
		m.searchQuery = m.searchInput.Value()
		m.refilter()
	}

	return m, cmd
}

func (m *keysheet) resetCurrentMotion() {
	m.currentMotion = m.currentMotion[:0]
}

func (m *keysheet) switchMode(newMode meta.InputMode) {
	if m.inputMode == meta.COMMANDMODE {
		m.commandInput.Reset()
		m.commandInput.Blur()
	}

	switch newMode {
	case meta.INSERTMODE:
		// enterInsert decides itself whether insert mode is possible
		m.enterInsert()
		return

	case meta.SEARCHMODE:
		m.searchQuery = ""
		m.searchInput.Reset()
		m.searchInput.Focus()
		m.refilter()

	case meta.COMMANDMODE:
		m.commandInput.Focus()

	case meta.GROUPFILTERMODE:
		m.groupFilter.open()

	case meta.EXPORTMODE:
		m.exportMenu.selected = 0

	case meta.IMPORTMODE:
		m.importMenu.selected = 0
	}

	m.inputMode = newMode
	m.resetCurrentMotion()
}

func (m *keysheet) finishSearch(clear bool) {
	if clear {
		m.searchQuery = ""
		m.refilter()
	}

	m.searchInput.Reset()
	m.searchInput.Blur()
	m.inputMode = meta.NORMALMODE
}
