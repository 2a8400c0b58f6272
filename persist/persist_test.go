package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := Connect(filepath.Join(t.TempDir(), "test.db"))
	require.Nil(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSchemaSetup(t *testing.T) {
	db := testDB(t)

	for _, table := range []string{"groups", "records"} {
		setUp, err := db.TableIsSetUp(table)
		require.Nil(t, err)
		assert.True(t, setUp, "table %q", table)
	}

	setUp, err := db.TableIsSetUp("nonsense")
	require.Nil(t, err)
	assert.False(t, setUp)
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	db := testDB(t)

	entries := []Entry{
		{Chord: "J", Description: "move down"},
		{Chord: "K", Description: "move up"},
	}
	require.Nil(t, db.SaveGroup("Vim", entries))
	require.Nil(t, db.SaveGroup("Tmux", []Entry{{Chord: "q", Description: "close pane"}}))

	loaded, err := db.LoadAll()
	require.Nil(t, err)

	require.Len(t, loaded, 2)
	assert.Equal(t, entries, loaded["Vim"])
	assert.Equal(t, "q", loaded["Tmux"][0].Chord)
}

func TestSaveGroupReplacesRecords(t *testing.T) {
	db := testDB(t)

	require.Nil(t, db.SaveGroup("Vim", []Entry{{Chord: "J", Description: "move down"}}))
	require.Nil(t, db.SaveGroup("Vim", []Entry{{Chord: "u", Description: "undo"}}))

	loaded, err := db.LoadAll()
	require.Nil(t, err)
	assert.Equal(t, []Entry{{Chord: "u", Description: "undo"}}, loaded["Vim"])
}

func TestSaveEmptyGroupKeepsGroupKnown(t *testing.T) {
	db := testDB(t)

	require.Nil(t, db.SaveGroup("Terminal", []Entry{}))

	loaded, err := db.LoadAll()
	require.Nil(t, err)
	require.Contains(t, loaded, "Terminal")
	assert.Empty(t, loaded["Terminal"])
}

func TestGroupFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Vim.json")

	entries := []Entry{{Chord: "gg", Description: "goto top"}}
	require.Nil(t, WriteGroupFile(path, "Vim", entries))

	document, err := ReadGroupFile(path)
	require.Nil(t, err)
	assert.Equal(t, "Vim", document.Group)
	assert.Equal(t, entries, document.Entries)
}

func TestReadGroupFileRejectsNamelessDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.Nil(t, WriteGroupFile(path, "", nil))

	_, err := ReadGroupFile(path)
	assert.NotNil(t, err)
}
