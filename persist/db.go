// Package persist is the storage boundary of the editor: a sqlite database
// holding every group's records, plus JSON exchange files for export and
// import. The in-memory state stays authoritative; a failure here surfaces
// as a status message and nothing else.
package persist

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sqlx.DB
}

func Connect(path string) (*DB, error) {
	conn, err := sqlx.Connect("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc&_foreign_keys=on", path))
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.setupSchema(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) setupSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS groups(
		name TEXT PRIMARY KEY
	) STRICT;

	CREATE TABLE IF NOT EXISTS records(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		grp TEXT NOT NULL REFERENCES groups(name),
		position INTEGER NOT NULL,
		chord TEXT NOT NULL,
		description TEXT NOT NULL
	) STRICT;`

	_, err := db.conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("couldn't set up schema: %w", err)
	}

	return nil
}

func (db *DB) TableIsSetUp(name string) (bool, error) {
	result, err := db.conn.Query("SELECT name FROM sqlite_master WHERE type='table' AND name=$1", name)
	if err != nil {
		return false, fmt.Errorf("couldn't check table %q: %w", name, err)
	}
	defer result.Close()

	return result.Next(), nil
}
