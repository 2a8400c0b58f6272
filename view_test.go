package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"keysheet/store"
)

func TestSplitMatches(t *testing.T) {
	record := store.Record{Chord: "J", Description: "move down"}

	// Positions index into "J move down"
	chord, description := splitMatches(record, []int{0, 2, 3, 4})
	assert.Equal(t, []int{0}, chord)
	assert.Equal(t, []int{0, 1, 2}, description)

	// The separator space itself belongs to neither column
	chord, description = splitMatches(record, []int{1})
	assert.Empty(t, chord)
	assert.Empty(t, description)
}

func TestViewRendersWithoutSize(t *testing.T) {
	m := testKeysheet(t)
	assert.Equal(t, "Loading...", m.View())
}

func TestStatusLineShowsDirtyMarker(t *testing.T) {
	m := testKeysheet(t)
	m.viewWidth = 80
	m.viewHeight = 24

	assert.NotContains(t, m.viewStatusLine(), "[+]")

	press(t, m, "d", "d")
	assert.Contains(t, m.viewStatusLine(), "[+]")
}

func TestBottomLineShowsPendingMotion(t *testing.T) {
	m := testKeysheet(t)
	m.viewWidth = 80
	m.viewHeight = 24

	press(t, m, "d")
	assert.Contains(t, m.viewBottomLine(), "d")

	press(t, m, "ctrl+c")
	press(t, m, " ")
	assert.Contains(t, m.viewBottomLine(), "<leader>")
}
