package store

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// One visible row of the filtered view: the position of the record in the
// store, plus the character positions within SearchText() that matched the
// query. Matches is nil when the query was empty.
type FilteredItem struct {
	Index   int
	Matches []int
}

// Match runs a subsequence fuzzy match of needle against haystack and
// reports the matched character positions. The needle is stripped of
// whitespace and lower-cased first; an empty needle matches everything
// with no highlighted positions.
//
// Scoring only decides membership, never order: the filtered view keeps
// records in store order so that row positions stay predictable.
func Match(haystack, needle string) ([]int, bool) {
	needle = normaliseQuery(needle)
	if needle == "" {
		return nil, true
	}

	matches := fuzzy.Find(needle, []string{haystack})
	if len(matches) == 0 {
		return nil, false
	}

	return matches[0].MatchedIndexes, true
}

func normaliseQuery(query string) string {
	var b strings.Builder
	for _, r := range query {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Rebuild walks the store in order and keeps every record that belongs to
// the active group and matches the query. Callers re-clamp their selection
// cursor afterwards; a stale view must never outlive a mutation.
func Rebuild(s *Store, activeGroup, query string) []FilteredItem {
	items := []FilteredItem{}

	for i := 0; i < s.Len(); i++ {
		record := s.At(i)
		if record.Group != activeGroup {
			continue
		}

		positions, ok := Match(record.SearchText(), query)
		if !ok {
			continue
		}

		items = append(items, FilteredItem{Index: i, Matches: positions})
	}

	return items
}

// FilterStrings keeps the candidates matching the query, in input order.
// Used by the group filter popup.
func FilterStrings(candidates []string, query string) []string {
	result := []string{}
	for _, candidate := range candidates {
		if _, ok := Match(candidate, query); ok {
			result = append(result, candidate)
		}
	}

	return result
}
