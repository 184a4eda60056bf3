package journal

import (
	"cmp"
	"slices"
	"strings"

	"devdiary/internal/storage"
)

// Filter narrows an entry listing. Zero-valued fields are not applied;
// all applied fields must match.
type Filter struct {
	ProjectID *int64
	Tag       string
	Search    string // case-insensitive substring of title or body
	DateFrom  string // inclusive, YYYY-MM-DD
	DateTo    string // inclusive, YYYY-MM-DD
}

// Matches reports whether e satisfies every provided filter.
func (f Filter) Matches(e storage.Entry) bool {
	if f.ProjectID != nil && (e.ProjectID == nil || *e.ProjectID != *f.ProjectID) {
		return false
	}
	if f.Tag != "" && !slices.Contains(e.Tags, f.Tag) {
		return false
	}
	if f.DateFrom != "" && e.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && e.Date > f.DateTo {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !containsFold(e.Title, needle) && !containsFold(e.Body, needle) {
			return false
		}
	}
	return true
}

func containsFold(s *string, lowerNeedle string) bool {
	return s != nil && strings.Contains(strings.ToLower(*s), lowerNeedle)
}

// Apply returns the entries matching f, newest date first.
// Entries on the same date are ordered by id, highest first.
func Apply(entries []storage.Entry, f Filter) []storage.Entry {
	out := make([]storage.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	SortNewestFirst(out)
	return out
}

// SortNewestFirst sorts entries by date descending, then id descending.
func SortNewestFirst(entries []storage.Entry) {
	slices.SortStableFunc(entries, func(a, b storage.Entry) int {
		if c := cmp.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
