package meta

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// MotionSet holds one Trie of motions per input mode that resolves key
// sequences. Popup modes (group filter, export, import, help) take a small
// fixed set of keys and are handled directly by their sub-models instead.
type MotionSet struct {
	Normal  Trie[tea.Msg]
	Insert  Trie[tea.Msg]
	Search  Trie[tea.Msg]
	Command Trie[tea.Msg]
}

func (ms *MotionSet) Get(mode InputMode, path Motion) (tea.Msg, bool) {
	return ms.trieFor(mode).get(path)
}

// Whether path is the prefix of at least one motion in the given mode.
// A true result for a non-leaf path means the dispatcher should hold the
// strokes entered so far and wait for the disambiguating key.
func (ms *MotionSet) ContainsPath(mode InputMode, path Motion) bool {
	return ms.trieFor(mode).containsPath(path)
}

func (ms *MotionSet) trieFor(mode InputMode) *Trie[tea.Msg] {
	switch mode {
	case NORMALMODE:
		return &ms.Normal

	case INSERTMODE:
		return &ms.Insert

	case SEARCHMODE:
		return &ms.Search

	case COMMANDMODE:
		return &ms.Command

	default:
		panic(fmt.Sprintf("unexpected meta.InputMode: %#v", mode))
	}
}
