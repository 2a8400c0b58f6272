// Package store owns the in-memory keybind records and the set of known
// groups. It has no awareness of input modes or rendering; the session model
// drives it and decides dirtiness by comparing old and new values.
package store

import (
	"slices"
	"sort"
)

// The editable columns of a record, in display order.
const (
	ColumnChord = iota
	ColumnDescription

	NumColumns
)

// The group a session starts on when no groups exist yet.
const DefaultGroup = "default"

type Record struct {
	Chord       string
	Description string
	Group       string
}

// The haystack a search query runs against: both visible fields joined by a
// single space, so one set of match positions can address either column.
func (r Record) SearchText() string {
	return r.Chord + " " + r.Description
}

type Store struct {
	records []Record
	groups  map[string]struct{}
}

func New() *Store {
	return &Store{
		records: []Record{},
		groups:  map[string]struct{}{},
	}
}

func (s *Store) Len() int {
	return len(s.records)
}

// All positions index into the full, unfiltered sequence.
func (s *Store) At(position int) Record {
	return s.records[position]
}

func (s *Store) Insert(record Record, position int) {
	s.AddGroup(record.Group)

	position = min(position, len(s.records))
	s.records = slices.Insert(s.records, position, record)
}

func (s *Store) Append(record Record) {
	s.Insert(record, len(s.records))
}

// Remove is a silent no-op when position is out of range; callers are
// expected to pre-validate positions through the filtered view.
func (s *Store) Remove(position int) (Record, bool) {
	if position < 0 || position >= len(s.records) {
		return Record{}, false
	}

	removed := s.records[position]
	s.records = slices.Delete(s.records, position, position+1)

	return removed, true
}

func (s *Store) Field(position, column int) string {
	switch column {
	case ColumnChord:
		return s.records[position].Chord
	case ColumnDescription:
		return s.records[position].Description
	}

	return ""
}

func (s *Store) SetField(position, column int, value string) {
	switch column {
	case ColumnChord:
		s.records[position].Chord = value
	case ColumnDescription:
		s.records[position].Description = value
	}
}

// The known groups, sorted. A superset of the groups present in records,
// because a group freshly created with :new has no records yet.
func (s *Store) KnownGroups() []string {
	groups := make([]string, 0, len(s.groups))
	for group := range s.groups {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	return groups
}

func (s *Store) HasGroup(name string) bool {
	_, ok := s.groups[name]
	return ok
}

func (s *Store) AddGroup(name string) {
	if name == "" {
		return
	}

	s.groups[name] = struct{}{}
}

// Snapshot deep-copies the record sequence for the undo history.
func (s *Store) Snapshot() []Record {
	return slices.Clone(s.records)
}

// Restore replaces the record sequence wholesale with an earlier snapshot.
// Groups only ever grow: a group that existed before the snapshot was taken
// stays known even when the restored records no longer reference it.
func (s *Store) Restore(records []Record) {
	s.records = slices.Clone(records)

	for _, record := range s.records {
		s.AddGroup(record.Group)
	}
}

// RecordsOf returns the records of one group, preserving store order.
func (s *Store) RecordsOf(group string) []Record {
	result := []Record{}
	for _, record := range s.records {
		if record.Group == group {
			result = append(result, record)
		}
	}

	return result
}

// RemoveGroupRecords drops every record of the given group, for the
// replace-import semantics. The group itself stays known.
func (s *Store) RemoveGroupRecords(group string) {
	s.records = slices.DeleteFunc(s.records, func(r Record) bool {
		return r.Group == group
	})
}
