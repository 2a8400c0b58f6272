package main

import (
	"sort"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"

	"keysheet/keymap"
	"keysheet/meta"
	"keysheet/persist"
	"keysheet/store"
)

type notification struct {
	text    string
	isError bool
}

// keysheet is the one owner of all mutable session state. Every handler
// receives it by pointer; there are no ambient globals.
type keysheet struct {
	db *persist.DB

	viewWidth, viewHeight int

	store    *store.Store
	history  store.UndoStack
	filtered []store.FilteredItem

	activeGroup string
	// the active search query; deliberately outlives search mode so that
	// "search, then navigate" works
	searchQuery string

	selectedRow, selectedCol int

	// current vim-esque input mode
	inputMode meta.InputMode

	// the key strokes of a partially entered motion
	currentMotion meta.Motion
	motions       meta.MotionSet
	keymap        keymap.Keymap

	commandInput textinput.Model
	searchInput  textinput.Model
	editInput    textinput.Model

	// non-nil only while recording a chord for the chord column
	recorder *keymap.Recorder
	// set between creating a row with o/O and finishing its first full edit
	justCreated bool

	dirty  bool
	status notification

	groupFilter groupFilterState
	exportMenu  listPickerState
	importMenu  listPickerState

	debug      bool
	fatalError error
}

func newKeysheet(db *persist.DB, km keymap.Keymap, debug bool) (*keysheet, error) {
	commandInput := textinput.New()
	commandInput.Cursor.SetMode(cursor.CursorStatic)
	commandInput.Prompt = ":"

	searchInput := textinput.New()
	searchInput.Cursor.SetMode(cursor.CursorStatic)
	searchInput.Prompt = "/"

	editInput := textinput.New()
	editInput.Prompt = ""

	m := &keysheet{
		db: db,

		store:    store.New(),
		filtered: []store.FilteredItem{},

		inputMode: meta.NORMALMODE,

		currentMotion: make(meta.Motion, 0),
		motions:       keymap.Motions(km),
		keymap:        km,

		commandInput: commandInput,
		searchInput:  searchInput,
		editInput:    editInput,

		status: notification{text: "Welcome to keysheet!"},

		groupFilter: newGroupFilterState(),
		exportMenu:  listPickerState{},
		importMenu:  listPickerState{},

		debug: debug,
	}

	if db != nil {
		if err := m.loadAll(); err != nil {
			return nil, err
		}
	}

	groups := m.store.KnownGroups()
	if len(groups) > 0 {
		m.activeGroup = groups[0]
	} else {
		m.activeGroup = store.DefaultGroup
		m.store.AddGroup(m.activeGroup)
	}

	m.refilter()

	return m, nil
}

func (m *keysheet) loadAll() error {
	loaded, err := m.db.LoadAll()
	if err != nil {
		return err
	}

	groups := make([]string, 0, len(loaded))
	for group := range loaded {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		m.store.AddGroup(group)
		for _, entry := range loaded[group] {
			m.store.Append(store.Record{
				Chord:       entry.Chord,
				Description: entry.Description,
				Group:       group,
			})
		}
	}

	return nil
}

// refilter rebuilds the filtered view and re-clamps the selection. It runs
// after every store mutation, group switch and query change, before the next
// input is processed: a stale view must never be rendered or acted upon.
func (m *keysheet) refilter() {
	m.filtered = store.Rebuild(m.store, m.activeGroup, m.searchQuery)
	m.clampSelection()
}

func (m *keysheet) clampSelection() {
	if len(m.filtered) == 0 {
		m.selectedRow = 0
		m.selectedCol = 0
		return
	}

	m.selectedRow = max(0, min(m.selectedRow, len(m.filtered)-1))
	m.selectedCol = max(0, min(m.selectedCol, store.NumColumns-1))
}

// The store position of the currently selected visible row.
func (m *keysheet) selectedIndex() (int, bool) {
	if m.selectedRow >= len(m.filtered) {
		return 0, false
	}

	return m.filtered[m.selectedRow].Index, true
}

func (m *keysheet) setStatus(text string) {
	m.status = notification{text: text}
}

func (m *keysheet) setError(text string) {
	m.status = notification{text: text, isError: true}
}
