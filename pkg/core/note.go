package core

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Timestamp layouts accepted on load. Records are always written with
// TimeLayout (second precision, no zone) but files touched by other tools
// may carry RFC3339 stamps.
const (
	TimeLayout = "2006-01-02T15:04:05"
	DateLayout = "2006-01-02"
)

// Status is the workflow state of a note. The zero value is StatusTodo.
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
	StatusArchived
)

var statusNames = [...]string{"Todo", "In Progress", "Done", "Archived"}

func (s Status) String() string {
	if s < StatusTodo || int(s) >= len(statusNames) {
		return statusNames[StatusTodo]
	}
	return statusNames[s]
}

// ParseStatus maps a persisted status string back to a Status.
// Unknown values coerce to StatusTodo rather than failing the record.
func ParseStatus(name string) Status {
	for i, n := range statusNames {
		if n == name {
			return Status(i)
		}
	}
	return StatusTodo
}

// Statuses returns the enumeration in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone, StatusArchived}
}

// Next cycles to the following status, wrapping back to Todo.
func (s Status) Next() Status {
	return Status((int(s) + 1) % len(statusNames))
}

// Priority ranks a note A (highest) to C, or unset.
type Priority int

const (
	PriorityUnset Priority = iota
	PriorityA
	PriorityB
	PriorityC
)

func (p Priority) String() string {
	switch p {
	case PriorityA:
		return "A"
	case PriorityB:
		return "B"
	case PriorityC:
		return "C"
	default:
		return ""
	}
}

// ParsePriority maps a persisted priority string back to a Priority.
// Anything outside {A, B, C} coerces to unset.
func ParsePriority(name string) Priority {
	switch name {
	case "A":
		return PriorityA
	case "B":
		return PriorityB
	case "C":
		return PriorityC
	default:
		return PriorityUnset
	}
}

// Next cycles unset > A > B > C > unset.
func (p Priority) Next() Priority {
	return Priority((int(p) + 1) % 4)
}

// rank orders priorities for sorting: A before B before C before unset.
func (p Priority) rank() int {
	if p == PriorityUnset {
		return 99
	}
	return int(p)
}

// NoteItem is the central entity of the domain: a single task or note.
// It is owned by the Store once added; the Store stamps ModifiedAt on every
// mutation, the entity itself only sets timestamps at construction.
type NoteItem struct {
	ID         string
	Text       string
	Notes      string // long-form body, rendered as markdown by the UI
	Status     Status
	Priority   Priority
	Tags       []string
	CreatedAt  *time.Time
	ModifiedAt *time.Time
	DueDate    *time.Time // date only, no time component
}

// NewNote creates a note with a fresh ID and both timestamps set to now
// (second precision).
func NewNote(text string) NoteItem {
	now := time.Now().Truncate(time.Second)
	return NoteItem{
		ID:         uuid.NewString(),
		Text:       text,
		Status:     StatusTodo,
		CreatedAt:  &now,
		ModifiedAt: &now,
	}
}

// LastTouched returns the temporal anchor used by the forgetting model:
// ModifiedAt when present, CreatedAt otherwise, nil when the note has no
// usable timestamp at all.
func (n NoteItem) LastTouched() *time.Time {
	if n.ModifiedAt != nil {
		return n.ModifiedAt
	}
	return n.CreatedAt
}

// HasTag reports whether the note carries the given tag (case-insensitive).
func (n NoteItem) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	return slices.Contains(n.Tags, tag)
}

// NormalizeTags trims, lowercases, de-duplicates and sorts a tag list,
// dropping blanks. The operation is idempotent.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Record is the decoded wire form of a single note: one JSON object from the
// persisted file, or one frontmatter map from a markdown import.
type Record map[string]any

// Record serializes the note to its wire form. Timestamps become ISO-8601
// strings, nil when absent. Tags are always emitted as a (possibly empty)
// array, never null.
func (n NoteItem) Record() Record {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	r := Record{
		"id":          n.ID,
		"text":        n.Text,
		"notes":       n.Notes,
		"status":      n.Status.String(),
		"priority":    nil,
		"tags":        tags,
		"created_at":  nil,
		"modified_at": nil,
		"due_date":    nil,
	}
	if n.Priority != PriorityUnset {
		r["priority"] = n.Priority.String()
	}
	if n.CreatedAt != nil {
		r["created_at"] = n.CreatedAt.Format(TimeLayout)
	}
	if n.ModifiedAt != nil {
		r["modified_at"] = n.ModifiedAt.Format(TimeLayout)
	}
	if n.DueDate != nil {
		r["due_date"] = n.DueDate.Format(DateLayout)
	}
	return r
}

// ItemFromRecord is the tolerant inverse of Record. Missing IDs are
// regenerated, invalid status/priority values coerce to their defaults and
// unparsable dates are logged and treated as absent. It never fails: the
// store has to survive partially corrupted files.
func ItemFromRecord(r Record) NoteItem {
	n := NoteItem{
		ID:       stringField(r, "id"),
		Text:     stringField(r, "text"),
		Notes:    stringField(r, "notes"),
		Status:   ParseStatus(stringField(r, "status")),
		Priority: ParsePriority(stringField(r, "priority")),
		Tags:     NormalizeTags(tagsField(r)),
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = timeField(r, "created_at", TimeLayout, time.RFC3339)
	n.ModifiedAt = timeField(r, "modified_at", TimeLayout, time.RFC3339)
	n.DueDate = timeField(r, "due_date", DateLayout)
	now := time.Now().Truncate(time.Second)
	if n.CreatedAt == nil {
		n.CreatedAt = &now
	}
	if n.ModifiedAt == nil {
		n.ModifiedAt = &now
	}
	return n
}

func stringField(r Record, key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

func tagsField(r Record) []string {
	switch v := r["tags"].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// timeField reads an optional timestamp, trying each layout in turn.
// YAML decoding may already have produced a time.Time; JSON always gives a
// string. A malformed value is logged and dropped, never propagated.
func timeField(r Record, key string, layouts ...string) *time.Time {
	switch v := r[key].(type) {
	case nil:
		return nil
	case time.Time:
		t := v.Truncate(time.Second)
		return &t
	case string:
		if v == "" {
			return nil
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, v); err == nil {
				t = t.Truncate(time.Second)
				return &t
			}
		}
		slog.Warn("unparsable date in note record, treating as absent",
			"field", key, "value", v, "id", stringField(r, "id"))
		return nil
	default:
		slog.Warn("unexpected date type in note record, treating as absent",
			"field", key, "id", stringField(r, "id"))
		return nil
	}
}
