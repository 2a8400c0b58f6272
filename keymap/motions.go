package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"keysheet/meta"
)

type motionWithValue struct {
	path  meta.Motion
	value tea.Msg
}

// Motions builds the per-mode motion tries from the resolved keymap.
//
// Two-press sequences (gg, dd, d+down, d+up) and leader chords are plain
// trie paths: the first stroke leaves the dispatcher waiting on a prefix,
// the second either resolves a leaf or invalidates the whole motion. No
// key-held or timing tricks involved, so recognition is deterministic.
func Motions(km Keymap) meta.MotionSet {
	normalMotions := make([]motionWithValue, 0)

	extendMotionsBy(&normalMotions, meta.Motion{}, []motionWithValue{
		{meta.Motion{km.Up}, meta.NavigateMsg{Direction: meta.UP}},
		{meta.Motion{km.Down}, meta.NavigateMsg{Direction: meta.DOWN}},

		{meta.Motion{km.GotoBottom}, meta.JumpRowMsg{ToBottom: true}},

		{meta.Motion{km.InsertMode}, meta.SwitchModeMsg{InputMode: meta.INSERTMODE}},
		{meta.Motion{km.SearchMode}, meta.SwitchModeMsg{InputMode: meta.SEARCHMODE}},
		{meta.Motion{km.CommandMode}, meta.SwitchModeMsg{InputMode: meta.COMMANDMODE}},

		{meta.Motion{km.Undo}, meta.UndoMsg{}},

		{meta.Motion{km.NewRowBelow}, meta.NewRowMsg{Above: false}},
		{meta.Motion{km.NewRowAbove}, meta.NewRowMsg{Above: true}},
	})

	for _, key := range km.Left {
		extendMotionsBy(&normalMotions, meta.Motion{}, []motionWithValue{
			{meta.Motion{key}, meta.NavigateMsg{Direction: meta.LEFT}},
		})
	}
	for _, key := range km.Right {
		extendMotionsBy(&normalMotions, meta.Motion{}, []motionWithValue{
			{meta.Motion{key}, meta.NavigateMsg{Direction: meta.RIGHT}},
		})
	}

	// "gg"
	extendMotionsBy(&normalMotions, meta.Motion{km.GotoTop}, []motionWithValue{
		{meta.Motion{km.GotoTop}, meta.JumpRowMsg{ToBottom: false}},
	})

	// "dd", "d<down>", "d<up>"
	extendMotionsBy(&normalMotions, meta.Motion{km.DeleteLeader}, []motionWithValue{
		{meta.Motion{km.DeleteLeader}, meta.DeleteRowsMsg{Also: meta.NONE}},
		{meta.Motion{km.Down}, meta.DeleteRowsMsg{Also: meta.DOWN}},
		{meta.Motion{km.Up}, meta.DeleteRowsMsg{Also: meta.UP}},
	})

	// Leader chords
	extendMotionsBy(&normalMotions, meta.Motion{km.Leader}, []motionWithValue{
		{meta.Motion{km.GroupFilter}, meta.SwitchModeMsg{InputMode: meta.GROUPFILTERMODE}},
		{meta.Motion{km.ExportMenu}, meta.SwitchModeMsg{InputMode: meta.EXPORTMODE}},
		{meta.Motion{km.ImportMenu}, meta.SwitchModeMsg{InputMode: meta.IMPORTMODE}},
	})

	var normal meta.Trie[tea.Msg]
	for _, m := range normalMotions {
		normal.Insert(m.path, m.value)
	}

	insertMotions := []motionWithValue{
		{meta.Motion{"enter"}, meta.CommitEditMsg{}},
		{meta.Motion{"esc"}, meta.CancelEditMsg{}},
		{meta.Motion{"ctrl+c"}, meta.CancelEditMsg{}},
	}

	var insert meta.Trie[tea.Msg]
	for _, m := range insertMotions {
		insert.Insert(m.path, m.value)
	}

	searchMotions := []motionWithValue{
		{meta.Motion{"enter"}, meta.SearchDoneMsg{Clear: false}},
		{meta.Motion{"esc"}, meta.SearchDoneMsg{Clear: true}},
		{meta.Motion{"ctrl+c"}, meta.SearchDoneMsg{Clear: true}},
	}

	var search meta.Trie[tea.Msg]
	for _, m := range searchMotions {
		search.Insert(m.path, m.value)
	}

	commandMotions := []motionWithValue{
		{meta.Motion{"enter"}, meta.ExecuteCommandMsg{}},
		{meta.Motion{"esc"}, meta.SwitchModeMsg{InputMode: meta.NORMALMODE}},
		{meta.Motion{"ctrl+c"}, meta.SwitchModeMsg{InputMode: meta.NORMALMODE}},
	}

	var command meta.Trie[tea.Msg]
	for _, m := range commandMotions {
		command.Insert(m.path, m.value)
	}

	return meta.MotionSet{
		Normal:  normal,
		Insert:  insert,
		Search:  search,
		Command: command,
	}
}

func extendMotionsBy(motions *[]motionWithValue, base meta.Motion, tail []motionWithValue) {
	for _, t := range tail {
		fullPath := append(append(meta.Motion{}, base...), t.path...)
		*motions = append(*motions, motionWithValue{path: fullPath, value: t.value})
	}
}
