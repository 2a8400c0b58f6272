package store

// How many snapshots the undo history keeps before evicting the oldest.
const MaxUndoDepth = 20

// UndoStack is a bounded history of full record-sequence snapshots.
// Push before mutating, never after. Single-level chronological undo,
// there is no redo stack.
//
// Whole-sequence clones are fine at the expected scale of hundreds of
// records; structural sharing would only start to matter far beyond that.
type UndoStack struct {
	snapshots [][]Record
}

func (u *UndoStack) Len() int {
	return len(u.snapshots)
}

func (u *UndoStack) Push(snapshot []Record) {
	if len(u.snapshots) >= MaxUndoDepth {
		// FIFO eviction: snapshots are chronological, the oldest goes first
		u.snapshots = u.snapshots[1:]
	}

	u.snapshots = append(u.snapshots, snapshot)
}

func (u *UndoStack) Pop() ([]Record, bool) {
	if len(u.snapshots) == 0 {
		return nil, false
	}

	last := u.snapshots[len(u.snapshots)-1]
	u.snapshots = u.snapshots[:len(u.snapshots)-1]

	return last, true
}
