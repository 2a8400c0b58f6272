package persist

import (
	"fmt"
)

// One stored keybind. The json tags double as the exchange-file format,
// which keeps exported files readable by earlier versions of the tool.
type Entry struct {
	Chord       string `db:"chord" json:"keys"`
	Description string `db:"description" json:"description"`
}

type recordRow struct {
	Group string `db:"grp"`
	Entry
}

// LoadAll reads every group and its records, in stored order. Groups
// without records are present in the result with an empty slice.
func (db *DB) LoadAll() (map[string][]Entry, error) {
	groups := []string{}
	err := db.conn.Select(&groups, "SELECT name FROM groups ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("couldn't load groups: %w", err)
	}

	result := make(map[string][]Entry, len(groups))
	for _, group := range groups {
		result[group] = []Entry{}
	}

	rows := []recordRow{}
	err = db.conn.Select(&rows, "SELECT grp, chord, description FROM records ORDER BY grp, position")
	if err != nil {
		return nil, fmt.Errorf("couldn't load records: %w", err)
	}

	for _, row := range rows {
		result[row.Group] = append(result[row.Group], row.Entry)
	}

	return result, nil
}

// SaveGroup replaces the stored records of one group with the given
// sequence, preserving order through the position column.
func (db *DB) SaveGroup(group string, entries []Entry) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return fmt.Errorf("couldn't start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO groups(name) VALUES ($1) ON CONFLICT(name) DO NOTHING", group)
	if err != nil {
		return fmt.Errorf("couldn't save group %q: %w", group, err)
	}

	_, err = tx.Exec("DELETE FROM records WHERE grp = $1", group)
	if err != nil {
		return fmt.Errorf("couldn't clear records of %q: %w", group, err)
	}

	for position, entry := range entries {
		_, err = tx.Exec(
			"INSERT INTO records(grp, position, chord, description) VALUES ($1, $2, $3, $4)",
			group, position, entry.Chord, entry.Description,
		)
		if err != nil {
			return fmt.Errorf("couldn't save record %d of %q: %w", position, group, err)
		}
	}

	return tx.Commit()
}
