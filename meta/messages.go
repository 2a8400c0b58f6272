package meta

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Takes a message and builds a tea.Cmd that returns that message.
func MessageCmd(message tea.Msg) tea.Cmd {
	return func() tea.Msg { return message }
}

// A non-error notification for the status line.
type StatusMsg struct {
	Message string
}

func StatusCmd(message string) tea.Cmd {
	return MessageCmd(StatusMsg{Message: message})
}

// An error the program can't recover from, reported after the
// program has torn down the terminal.
type FatalErrorMsg struct {
	Error error
}

type SwitchModeMsg struct {
	InputMode InputMode
}

type Direction string

const (
	UP    Direction = "UP"
	RIGHT Direction = "RIGHT"
	DOWN  Direction = "DOWN"
	LEFT  Direction = "LEFT"
	NONE  Direction = "NONE"
)

type NavigateMsg struct {
	Direction
}

// For gg and G motions.
type JumpRowMsg struct {
	ToBottom bool
}

// Delete the selected row, plus the row above/below it for the
// d+up / d+down motions. Also is NONE for plain dd.
type DeleteRowsMsg struct {
	Also Direction
}

// Insert a blank record above or below the selected row and start
// editing it.
type NewRowMsg struct {
	Above bool
}

type UndoMsg struct{}

// Commit the pending field edit (insert mode enter, or a completed
// key capture).
type CommitEditMsg struct{}

// Discard the pending field edit (insert mode escape).
type CancelEditMsg struct{}

// Leave search mode. The query only resets when the search was
// abandoned with escape, not when it was confirmed with enter.
type SearchDoneMsg struct {
	Clear bool
}

type ExecuteCommandMsg struct{}

// Emitted by the export popup's file dialog command.
type ExportDoneMsg struct {
	Message string
	Err     error
}

// Emitted by the import popup once a file was picked and parsed.
// Data is a []persist.Entry; the session applies merge/replace itself so
// that the mutation lands inside the regular undo discipline.
type ImportLoadedMsg struct {
	Group   string
	Data    any
	Replace bool
	Err     error
}
