package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"keysheet/keymap"
	"keysheet/meta"
	"keysheet/store"
)

// enterInsert begins editing the selected cell. The chord column is edited
// through the key recorder, the description column through a regular text
// input seeded with the current value.
func (m *keysheet) enterInsert() {
	index, ok := m.selectedIndex()
	if !ok {
		m.setError("Nothing to edit.")
		return
	}

	if !m.justCreated {
		m.history.Push(m.store.Snapshot())
	}

	if m.selectedCol == store.ColumnChord {
		m.recorder = keymap.NewRecorder()
	} else {
		m.editInput.SetValue(m.store.Field(index, m.selectedCol))
		m.editInput.CursorEnd()
		m.editInput.Focus()
	}

	m.inputMode = meta.INSERTMODE
	m.resetCurrentMotion()
}

func (m *keysheet) handleCaptureKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyEscape {
		m.cancelEdit()
		return m, nil
	}

	chord, ok := m.recorder.Capture(message)
	if !ok {
		return m, nil
	}

	m.commitEdit(chord)

	return m, nil
}

// commitEdit writes the new value into the selected cell and leaves insert
// mode. Committing the chord of a freshly created row chains straight into
// editing its description.
func (m *keysheet) commitEdit(value string) {
	index, ok := m.selectedIndex()
	if !ok {
		m.leaveInsert()
		return
	}

	chain := m.justCreated && m.selectedCol == store.ColumnChord

	if m.store.Field(index, m.selectedCol) == value {
		// Committing the unchanged value is no mutation; drop the
		// snapshot like the cancel path does
		if !m.justCreated {
			m.history.Pop()
		}
	} else {
		m.store.SetField(index, m.selectedCol, value)
		m.dirty = true
	}

	m.leaveInsert()

	if chain {
		m.selectedCol = store.ColumnDescription
		m.justCreated = true
		m.enterInsert()
	}
}

// cancelEdit leaves insert mode without writing the pending value. A freshly
// created row that never got any content is removed again.
func (m *keysheet) cancelEdit() {
	if m.justCreated {
		if index, ok := m.selectedIndex(); ok {
			record := m.store.At(index)
			if record.Chord == "" && record.Description == "" {
				m.store.Remove(index)
				m.refilter()
				// Removing the untouched row restored the snapshot state
				m.history.Pop()
			}
		}
	} else {
		// Nothing changed, so the snapshot taken on entering insert mode
		// must not become a no-op undo step
		m.history.Pop()
	}

	m.leaveInsert()
}

func (m *keysheet) leaveInsert() {
	m.recorder = nil
	m.justCreated = false
	m.editInput.Reset()
	m.editInput.Blur()
	m.inputMode = meta.NORMALMODE
	m.resetCurrentMotion()
}
