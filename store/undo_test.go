package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRestoresPreMutationState(t *testing.T) {
	s := vimStore()
	var history UndoStack

	history.Push(s.Snapshot())
	s.Remove(0)
	s.SetField(0, ColumnDescription, "changed")

	snapshot, ok := history.Pop()
	require.True(t, ok)
	s.Restore(snapshot)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, Record{Chord: "J", Description: "move down", Group: "Vim"}, s.At(0))
	assert.Equal(t, Record{Chord: "K", Description: "move up", Group: "Vim"}, s.At(1))
}

func TestUndoEmptyHistory(t *testing.T) {
	var history UndoStack

	_, ok := history.Pop()
	assert.False(t, ok)
}

func TestUndoDepthBoundFIFO(t *testing.T) {
	var history UndoStack

	for i := 0; i < MaxUndoDepth+5; i++ {
		history.Push([]Record{{Chord: fmt.Sprintf("%d", i), Group: "Vim"}})
	}

	assert.Equal(t, MaxUndoDepth, history.Len())

	// Most recent first; the oldest five were evicted
	snapshot, ok := history.Pop()
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("%d", MaxUndoDepth+4), snapshot[0].Chord)

	for history.Len() > 1 {
		history.Pop()
	}

	snapshot, _ = history.Pop()
	assert.Equal(t, "5", snapshot[0].Chord)
}
