package meta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertTrieKeysOnly(t *testing.T) {
	var trie Trie[int]

	tests := []struct {
		value           string
		changedExpected bool
	}{
		{"dd", true},
		{"dj", true},
		{"gg", true},
		{"gg", false},
	}

	for _, test := range tests {
		changed := trie.Insert(strings.Split(test.value, ""), 0)
		assert.Equal(t, test.changedExpected, changed)
	}

	for _, test := range tests {
		_, exists := trie.get(strings.Split(test.value, ""))
		assert.True(t, exists)
	}

	// A bare prefix is not a motion by itself
	_, exists := trie.get([]string{"d"})
	assert.False(t, exists)
	assert.True(t, trie.containsPath([]string{"d"}))
}

func TestDefaultValueSane(t *testing.T) {
	var trie Trie[int]

	_, exists := trie.get([]string{})
	assert.False(t, exists)

	_, exists = trie.get([]string{""})
	assert.False(t, exists)
}

func TestHandleEmptyKey(t *testing.T) {
	var trie Trie[int]

	changed := trie.Insert([]string{}, 0)
	assert.False(t, changed)

	_, exists := trie.get([]string{})
	assert.False(t, exists)
}

func TestInsertTrieWithValues(t *testing.T) {
	var trie Trie[int]

	trie.Insert([]string{"u"}, 1)
	trie.Insert([]string{"g", "g"}, 2)

	value, exists := trie.get([]string{"u"})
	assert.True(t, exists)
	assert.Equal(t, 1, value)

	value, exists = trie.get([]string{"g", "g"})
	assert.True(t, exists)
	assert.Equal(t, 2, value)

	// First binding for a path wins
	trie.Insert([]string{"u"}, 3)
	value, _ = trie.get([]string{"u"})
	assert.Equal(t, 1, value)
}

func TestContainsPath(t *testing.T) {
	var trie Trie[int]

	trie.Insert([]string{" ", "f"}, 1)

	assert.True(t, trie.containsPath([]string{" "}))
	assert.True(t, trie.containsPath([]string{" ", "f"}))
	assert.False(t, trie.containsPath([]string{" ", "x"}))
	assert.False(t, trie.containsPath([]string{"x"}))
}

func TestMotionView(t *testing.T) {
	motion := Motion{LEADER, "f"}
	assert.Equal(t, "<leader>f", motion.View())

	motion = Motion{"g", "g"}
	assert.Equal(t, "gg", motion.View())
}
