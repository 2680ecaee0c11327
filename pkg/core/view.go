package core

import (
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Sort keys understood by the view pipeline. Anything else falls back to
// ascending creation time.
const (
	SortPriority   = "priority"
	SortDueDate    = "due_date"
	SortCreatedAt  = "created_at"
	SortModifiedAt = "modified_at"
	SortStatus     = "status"
	SortText       = "text"
)

// SortKeys lists the recognized sort keys in the order the UI offers them.
func SortKeys() []string {
	return []string{SortPriority, SortDueDate, SortCreatedAt, SortModifiedAt, SortStatus, SortText}
}

// Filters narrows a view of the collection. Nil Status/Priority means "any".
// Archived notes are excluded unless IncludeArchived is set; the other
// filters are ANDed in on top.
//
// Tag matches case-insensitively and may be a doublestar glob pattern
// ("proj/*" matches the tags "proj/alpha" and "proj/beta"); a pattern with
// no metacharacters behaves as a literal.
type Filters struct {
	Status          *Status
	Priority        *Priority
	Tag             string
	IncludeArchived bool
}

// None reports whether the filter set is empty apart from the implicit
// archived exclusion.
func (f Filters) None() bool {
	return f.Status == nil && f.Priority == nil && f.Tag == "" && !f.IncludeArchived
}

// View produces the display-ready ordering of a snapshot of the collection:
// filter, then search, then a stable sort. The input slice is never
// mutated. Filtering is idempotent and sorting preserves the relative input
// order of equal keys.
func View(notes []NoteItem, sortKey string, filters Filters, query string) []NoteItem {
	out := make([]NoteItem, 0, len(notes))

	for _, n := range notes {
		if !filters.IncludeArchived && n.Status == StatusArchived {
			continue
		}
		if filters.Status != nil && n.Status != *filters.Status {
			continue
		}
		if filters.Priority != nil && n.Priority != *filters.Priority {
			continue
		}
		if filters.Tag != "" && !matchTag(n, filters.Tag) {
			continue
		}
		out = append(out, n)
	}

	if query != "" {
		q := strings.ToLower(query)
		matched := out[:0]
		for _, n := range out {
			if matchQuery(n, q) {
				matched = append(matched, n)
			}
		}
		out = matched
	}

	sortNotes(out, sortKey)
	return out
}

func matchTag(n NoteItem, pattern string) bool {
	pattern = strings.ToLower(pattern)
	for _, t := range n.Tags {
		if ok, err := doublestar.Match(pattern, t); err == nil && ok {
			return true
		}
		if t == pattern {
			return true
		}
	}
	return false
}

func matchQuery(n NoteItem, q string) bool {
	if strings.Contains(strings.ToLower(n.Text), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Notes), q) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(t, q) {
			return true
		}
	}
	return false
}

// farFuture stands in for missing dates so they sort after every real one.
var farFuture = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

func sortNotes(notes []NoteItem, key string) {
	var less func(a, b NoteItem) bool

	switch key {
	case SortPriority:
		less = func(a, b NoteItem) bool { return a.Priority.rank() < b.Priority.rank() }
	case SortDueDate:
		less = func(a, b NoteItem) bool { return timeOrLast(a.DueDate).Before(timeOrLast(b.DueDate)) }
	case SortModifiedAt:
		// Most recently touched first; notes without a stamp go last.
		less = func(a, b NoteItem) bool { return timeOrFirst(b.ModifiedAt).Before(timeOrFirst(a.ModifiedAt)) }
	case SortStatus:
		less = func(a, b NoteItem) bool { return a.Status < b.Status }
	case SortText:
		less = func(a, b NoteItem) bool { return strings.ToLower(a.Text) < strings.ToLower(b.Text) }
	default:
		// Includes SortCreatedAt and any unrecognized key.
		less = func(a, b NoteItem) bool { return timeOrLast(a.CreatedAt).Before(timeOrLast(b.CreatedAt)) }
	}

	sort.SliceStable(notes, func(i, j int) bool { return less(notes[i], notes[j]) })
}

func timeOrLast(t *time.Time) time.Time {
	if t == nil {
		return farFuture
	}
	return *t
}

func timeOrFirst(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
