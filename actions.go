package main

import (
	"log/slog"

	"keysheet/meta"
	"keysheet/store"
)

func (m *keysheet) navigate(direction meta.Direction) {
	switch direction {
	case meta.UP:
		m.selectedRow--

	case meta.DOWN:
		m.selectedRow++

	case meta.LEFT:
		m.selectedCol--

	case meta.RIGHT:
		m.selectedCol++
	}

	m.clampSelection()
}

func (m *keysheet) jumpRow(toBottom bool) {
	if toBottom {
		m.selectedRow = len(m.filtered) - 1
	} else {
		m.selectedRow = 0
	}

	m.clampSelection()
}

// deleteRows removes the selected row, optionally together with its
// neighbour above or below in the filtered view.
func (m *keysheet) deleteRows(also meta.Direction) {
	targets := []int{}

	if index, ok := m.selectedIndex(); ok {
		targets = append(targets, index)
	}

	neighbourRow := -1
	switch also {
	case meta.UP:
		neighbourRow = m.selectedRow - 1

	case meta.DOWN:
		neighbourRow = m.selectedRow + 1
	}

	if neighbourRow >= 0 && neighbourRow < len(m.filtered) {
		targets = append(targets, m.filtered[neighbourRow].Index)
	}

	if len(targets) == 0 {
		return
	}

	m.history.Push(m.store.Snapshot())

	// Remove back to front so earlier removals don't shift later indexes
	if len(targets) == 2 && targets[0] < targets[1] {
		targets[0], targets[1] = targets[1], targets[0]
	}
	for _, index := range targets {
		m.store.Remove(index)
	}

	m.dirty = true
	m.refilter()

	slog.Debug("Deleted rows", "count", len(targets))
}

// newRow inserts a blank record adjacent to the selection and immediately
// starts editing its chord column.
func (m *keysheet) newRow(above bool) {
	// A pending search is abandoned so the fresh row has a stable,
	// visible position to land on
	if m.searchQuery != "" {
		m.searchQuery = ""
		m.searchInput.Reset()
		m.refilter()
	}

	m.history.Push(m.store.Snapshot())

	position := m.store.Len()
	if index, ok := m.selectedIndex(); ok {
		if above {
			position = index
		} else {
			position = index + 1
		}
	}

	m.store.Insert(store.Record{Group: m.activeGroup}, position)
	m.dirty = true
	m.refilter()

	// Land on the fresh row. With no search active, filtered order is
	// store order restricted to the active group.
	for row, item := range m.filtered {
		if item.Index == position {
			m.selectedRow = row
			break
		}
	}
	m.selectedCol = store.ColumnChord

	m.justCreated = true
	m.enterInsert()
}

func (m *keysheet) undo() {
	snapshot, ok := m.history.Pop()
	if !ok {
		m.setStatus("Nothing to undo.")
		return
	}

	m.store.Restore(snapshot)
	m.dirty = true
	m.refilter()
	m.setStatus("Undo successful.")
}
