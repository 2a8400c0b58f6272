package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEmptyNeedle(t *testing.T) {
	positions, ok := Match("J move down", "")
	assert.True(t, ok)
	assert.Nil(t, positions)

	// Whitespace-only needles are empty needles
	positions, ok = Match("J move down", "  \t ")
	assert.True(t, ok)
	assert.Nil(t, positions)
}

func TestMatchSubsequence(t *testing.T) {
	positions, ok := Match("K move up", "mvu")
	require.True(t, ok)
	require.Len(t, positions, 3)

	// Positions are in order and point at matching characters
	text := "K move up"
	assert.Less(t, positions[0], positions[1])
	assert.Less(t, positions[1], positions[2])
	for i, r := range []byte{'m', 'v', 'u'} {
		assert.Equal(t, r, text[positions[i]])
	}
}

func TestMatchRejectsOutOfOrder(t *testing.T) {
	_, ok := Match("move down", "wod")
	assert.False(t, ok)
}

func TestMatchStripsWhitespaceAndCase(t *testing.T) {
	_, ok := Match("Ctrl+Alt+K switch layout", "CT AL")
	assert.True(t, ok)
}

func TestRebuildFiltersByGroupAndQuery(t *testing.T) {
	s := vimStore()
	s.Append(Record{Chord: "q", Description: "move pane", Group: "Tmux"})

	// Empty query: every record of the active group, no highlights
	items := Rebuild(s, "Vim", "")
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Index)
	assert.Equal(t, 1, items[1].Index)
	assert.Nil(t, items[0].Matches)
	assert.Nil(t, items[1].Matches)

	// "mov" matches both Vim records inside their descriptions,
	// in original order
	items = Rebuild(s, "Vim", "mov")
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Index)
	assert.Equal(t, 1, items[1].Index)

	for _, item := range items {
		text := s.At(item.Index).SearchText()
		require.Len(t, item.Matches, 3)
		matched := ""
		for _, p := range item.Matches {
			matched += string(text[p])
		}
		assert.Equal(t, "mov", matched)

		// All positions fall inside the description half of the
		// combined text, past the chord and separator
		for _, p := range item.Matches {
			assert.GreaterOrEqual(t, p, len(s.At(item.Index).Chord)+1)
		}
	}
}

func TestRebuildCountMatchesInvariant(t *testing.T) {
	s := vimStore()
	s.Append(Record{Chord: "dd", Description: "delete line", Group: "Vim"})
	s.Append(Record{Chord: "q", Description: "close pane", Group: "Tmux"})

	// After every mutation the row count equals the number of records
	// whose group and text both match
	for _, query := range []string{"", "d", "delete", "zzz"} {
		items := Rebuild(s, "Vim", query)

		expected := 0
		for i := 0; i < s.Len(); i++ {
			record := s.At(i)
			if record.Group != "Vim" {
				continue
			}
			if _, ok := Match(record.SearchText(), query); ok {
				expected++
			}
		}

		assert.Len(t, items, expected, "query %q", query)
	}

	s.Remove(0)
	items := Rebuild(s, "Vim", "")
	assert.Len(t, items, 2)
}

func TestFilterStrings(t *testing.T) {
	candidates := []string{"Vim", "Tmux", "Terminal"}

	assert.Equal(t, candidates, FilterStrings(candidates, ""))
	assert.Equal(t, []string{"Tmux", "Terminal"}, FilterStrings(candidates, "t"))
	assert.Equal(t, []string{"Terminal"}, FilterStrings(candidates, "ternl"))
	assert.Empty(t, FilterStrings(candidates, "xyz"))
}
