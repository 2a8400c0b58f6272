package meta

import "strings"

// The key that introduces chord motions like <leader>f.
// The keymap config can override it, this is just the fallback.
const LEADER = " "

type InputMode string

const (
	NORMALMODE      InputMode = "NORMAL"
	INSERTMODE      InputMode = "INSERT"
	SEARCHMODE      InputMode = "SEARCH"
	COMMANDMODE     InputMode = "COMMAND"
	GROUPFILTERMODE InputMode = "GROUPFILTER"
	EXPORTMODE      InputMode = "EXPORT"
	IMPORTMODE      InputMode = "IMPORT"
	HELPMODE        InputMode = "HELP"
)

// A Motion is a sequence of key strokes, each stroke being the
// tea.KeyMsg.String() of one key event.
type Motion []string

func (m Motion) Equals(right Motion) bool {
	if len(m) != len(right) {
		return false
	}

	for i, left := range m {
		if right[i] != left {
			return false
		}
	}

	return true
}

var specialStrokes = map[string]string{
	LEADER:      "<leader>",
	"backspace": "<bs>",
	"enter":     "<enter>",
	"esc":       "<esc>",
}

// Replaces special strokes like LEADER and "backspace" with more visually
// pleasing variants, then joins the strokes for rendering in the status line.
func (m Motion) View() string {
	result := make([]string, len(m))

	for i, s := range m {
		mapped, ok := specialStrokes[s]
		if ok {
			result[i] = mapped
		} else {
			result[i] = s
		}
	}

	return strings.Join(result, "")
}
