package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func armedRecorder() *Recorder {
	r := NewRecorder()
	r.Capture(keyMsg("i")) // the activation frame
	return r
}

func TestRecorderIgnoresExactlyOneFrame(t *testing.T) {
	r := NewRecorder()
	require.True(t, r.PendingIgnore())

	// The first event is swallowed even when it would be capturable
	_, ok := r.Capture(keyMsg("x"))
	assert.False(t, ok)
	assert.False(t, r.PendingIgnore())

	// The second is not
	chord, ok := r.Capture(keyMsg("x"))
	require.True(t, ok)
	assert.Equal(t, "X", chord)
}

func TestCapturePlainKey(t *testing.T) {
	chord, ok := armedRecorder().Capture(keyMsg("k"))
	require.True(t, ok)
	assert.Equal(t, "K", chord)
}

func TestCaptureShiftedKey(t *testing.T) {
	chord, ok := armedRecorder().Capture(keyMsg("K"))
	require.True(t, ok)
	assert.Equal(t, "Shift+K", chord)
}

func TestCaptureCtrlKey(t *testing.T) {
	chord, ok := armedRecorder().Capture(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.True(t, ok)
	assert.Equal(t, "Ctrl+K", chord)
}

func TestCaptureAltKey(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k"), Alt: true}
	chord, ok := armedRecorder().Capture(msg)
	require.True(t, ok)
	assert.Equal(t, "Alt+K", chord)
}

func TestCaptureCtrlAltOrdering(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyCtrlK, Alt: true}
	chord, ok := armedRecorder().Capture(msg)
	require.True(t, ok)
	assert.Equal(t, "Ctrl+Alt+K", chord)
}

func TestCaptureSpecialKeys(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected string
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, "Enter"},
		{tea.KeyMsg{Type: tea.KeyTab}, "Tab"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, "Space"},
		{tea.KeyMsg{Type: tea.KeyBackspace}, "Backspace"},
		{tea.KeyMsg{Type: tea.KeyUp}, "Up"},
	}

	for _, test := range tests {
		chord, ok := armedRecorder().Capture(test.msg)
		require.True(t, ok, "key %v", test.msg)
		assert.Equal(t, test.expected, chord)
	}
}

func TestCaptureShiftedSpecialKeys(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected string
	}{
		{tea.KeyMsg{Type: tea.KeyShiftUp}, "Shift+Up"},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "Shift+Tab"},
		{tea.KeyMsg{Type: tea.KeyCtrlShiftUp}, "Ctrl+Shift+Up"},
	}

	for _, test := range tests {
		chord, ok := armedRecorder().Capture(test.msg)
		require.True(t, ok, "key %v", test.msg)
		assert.Equal(t, test.expected, chord)
	}
}

func TestCaptureRejectsNonCapturable(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyF1},
		{Type: tea.KeyF12},
	} {
		r := armedRecorder()
		_, ok := r.Capture(msg)
		assert.False(t, ok, "key %v", msg)

		// A rejected key doesn't consume the recorder; the next
		// capturable key still lands
		chord, ok := r.Capture(keyMsg("q"))
		require.True(t, ok)
		assert.Equal(t, "Q", chord)
	}
}
