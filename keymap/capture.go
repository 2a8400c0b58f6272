package keymap

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder turns a raw key event into a canonical chord label like
// "Ctrl+Alt+K". It is active only while editing the chord column in insert
// mode.
//
// A fresh recorder ignores exactly one key event: the dispatcher feeds it
// the key that triggered entering insert mode, which must not be mistaken
// for the chord being recorded. Escape never reaches the recorder, the
// dispatcher treats it as cancel first.
type Recorder struct {
	ignoreNext bool
}

func NewRecorder() *Recorder {
	return &Recorder{ignoreNext: true}
}

// Whether the recorder still has its activation frame to swallow.
func (r *Recorder) PendingIgnore() bool {
	return r.ignoreNext
}

// Keys that never count as a chord on their own. Terminals don't deliver
// bare modifier presses, so the function keys are the remaining
// non-capturable class.
var nonCapturable = map[string]struct{}{}

func init() {
	for _, key := range []string{
		"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10",
		"f11", "f12", "f13", "f14", "f15", "f16", "f17", "f18", "f19", "f20",
	} {
		nonCapturable[key] = struct{}{}
	}
}

var baseNames = map[string]string{
	" ":         "Space",
	"enter":     "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"insert":    "Insert",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
}

// Capture inspects one key event and, when it is capturable, returns the
// canonical chord label: the held modifiers in fixed Ctrl, Alt, Shift order,
// then the base key name, joined by "+".
func (r *Recorder) Capture(msg tea.KeyMsg) (string, bool) {
	if r.ignoreNext {
		r.ignoreNext = false
		return "", false
	}

	stroke := msg.String()

	ctrl := false
	alt := msg.Alt
	shift := false

	stroke = strings.TrimPrefix(stroke, "alt+")
	if rest, ok := strings.CutPrefix(stroke, "ctrl+"); ok {
		ctrl = true
		stroke = rest
	}
	if rest, ok := strings.CutPrefix(stroke, "shift+"); ok {
		shift = true
		stroke = rest
	}

	if _, ok := nonCapturable[stroke]; ok {
		return "", false
	}

	base, ok := baseNames[stroke]
	if !ok {
		runes := []rune(stroke)
		switch {
		case len(runes) == 1 && runes[0] >= 'A' && runes[0] <= 'Z':
			shift = true
			base = stroke
		case len(runes) == 1:
			base = strings.ToUpper(stroke)
		default:
			// Unknown multi-character keys keep their bubbletea name
			base = strings.ToUpper(stroke[:1]) + stroke[1:]
		}
	}

	parts := []string{}
	if ctrl {
		parts = append(parts, "Ctrl")
	}
	if alt {
		parts = append(parts, "Alt")
	}
	if shift {
		parts = append(parts, "Shift")
	}
	parts = append(parts, base)

	return strings.Join(parts, "+"), true
}
