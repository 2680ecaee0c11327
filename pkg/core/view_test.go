package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day int) *time.Time {
	t := time.Date(2025, 1, day, 10, 0, 0, 0, time.UTC)
	return &t
}

func viewFixture() []NoteItem {
	return []NoteItem{
		{ID: "a", Text: "alpha report", Status: StatusTodo, Priority: PriorityC, Tags: []string{"work"}, CreatedAt: ts(1), ModifiedAt: ts(5), DueDate: ts(20)},
		{ID: "b", Text: "Beta groceries", Status: StatusInProgress, Priority: PriorityA, Tags: []string{"home"}, CreatedAt: ts(2), ModifiedAt: ts(4)},
		{ID: "c", Text: "gamma chores", Status: StatusDone, Priority: PriorityB, Tags: []string{"home", "weekend"}, CreatedAt: ts(3), ModifiedAt: ts(6), DueDate: ts(10)},
		{ID: "d", Text: "old archive", Status: StatusArchived, Priority: PriorityA, Tags: []string{"work"}, CreatedAt: ts(4), ModifiedAt: ts(2)},
		{ID: "e", Text: "delta errands", Status: StatusTodo, Tags: []string{"proj/alpha"}, CreatedAt: ts(5), ModifiedAt: ts(1)},
	}
}

func ids(notes []NoteItem) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestViewExcludesArchivedByDefault(t *testing.T) {
	got := View(viewFixture(), SortCreatedAt, Filters{}, "")
	assert.Equal(t, []string{"a", "b", "c", "e"}, ids(got))
}

func TestViewIncludeArchived(t *testing.T) {
	got := View(viewFixture(), SortCreatedAt, Filters{IncludeArchived: true}, "")
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(got))
}

func TestViewStatusAndPriorityFilters(t *testing.T) {
	st := StatusTodo
	got := View(viewFixture(), SortCreatedAt, Filters{Status: &st}, "")
	assert.Equal(t, []string{"a", "e"}, ids(got))

	pr := PriorityA
	got = View(viewFixture(), SortCreatedAt, Filters{Priority: &pr}, "")
	assert.Equal(t, []string{"b"}, ids(got)) // archived "d" stays hidden
}

func TestViewTagFilter(t *testing.T) {
	got := View(viewFixture(), SortCreatedAt, Filters{Tag: "home"}, "")
	assert.Equal(t, []string{"b", "c"}, ids(got))

	// Case-insensitive.
	got = View(viewFixture(), SortCreatedAt, Filters{Tag: "HOME"}, "")
	assert.Equal(t, []string{"b", "c"}, ids(got))
}

func TestViewTagGlobFilter(t *testing.T) {
	got := View(viewFixture(), SortCreatedAt, Filters{Tag: "proj/*"}, "")
	assert.Equal(t, []string{"e"}, ids(got))
}

func TestViewSearch(t *testing.T) {
	// Search matches text, notes and tags, case-insensitively, after
	// filtering.
	notes := viewFixture()
	notes[0].Notes = "contains NEEDLE somewhere"

	got := View(notes, SortCreatedAt, Filters{}, "needle")
	assert.Equal(t, []string{"a"}, ids(got))

	got = View(notes, SortCreatedAt, Filters{}, "weekend")
	assert.Equal(t, []string{"c"}, ids(got))

	got = View(notes, SortCreatedAt, Filters{}, "GAMMA")
	assert.Equal(t, []string{"c"}, ids(got))
}

func TestViewFilterIdempotent(t *testing.T) {
	f := Filters{Tag: "home"}
	once := View(viewFixture(), SortCreatedAt, f, "")
	twice := View(once, SortCreatedAt, f, "")
	assert.Equal(t, once, twice)
}

func TestViewSortPriority(t *testing.T) {
	got := View(viewFixture(), SortPriority, Filters{}, "")
	// A before B before C before unset.
	assert.Equal(t, []string{"b", "c", "a", "e"}, ids(got))
}

func TestViewSortDueDateMissingLast(t *testing.T) {
	got := View(viewFixture(), SortDueDate, Filters{}, "")
	assert.Equal(t, []string{"c", "a", "b", "e"}, ids(got))
}

func TestViewSortModifiedMostRecentFirst(t *testing.T) {
	got := View(viewFixture(), SortModifiedAt, Filters{}, "")
	assert.Equal(t, []string{"c", "a", "b", "e"}, ids(got))

	// A note without any modification stamp lands last.
	notes := viewFixture()
	notes[1].ModifiedAt = nil
	got = View(notes, SortModifiedAt, Filters{}, "")
	assert.Equal(t, "b", got[len(got)-1].ID)
}

func TestViewSortText(t *testing.T) {
	got := View(viewFixture(), SortText, Filters{}, "")
	// Case-insensitive: "Beta" sorts between "alpha" and "delta".
	assert.Equal(t, []string{"a", "b", "e", "c"}, ids(got))
}

func TestViewSortStatus(t *testing.T) {
	got := View(viewFixture(), SortStatus, Filters{IncludeArchived: true}, "")
	assert.Equal(t, []string{"a", "e", "b", "c", "d"}, ids(got))
}

func TestViewUnknownSortKeyFallsBack(t *testing.T) {
	got := View(viewFixture(), "definitely-not-a-key", Filters{}, "")
	assert.Equal(t, []string{"a", "b", "c", "e"}, ids(got))
}

func TestViewSortStable(t *testing.T) {
	a := NoteItem{ID: "one", Priority: PriorityB, CreatedAt: ts(1)}
	b := NoteItem{ID: "two", Priority: PriorityB, CreatedAt: ts(2)}
	c := NoteItem{ID: "three", Priority: PriorityB, CreatedAt: ts(3)}

	got := View([]NoteItem{b, c, a}, SortPriority, Filters{}, "")
	assert.Equal(t, []string{"two", "three", "one"}, ids(got))
}

func TestViewDoesNotMutateInput(t *testing.T) {
	notes := viewFixture()
	_ = View(notes, SortText, Filters{Tag: "home"}, "q")
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(notes))
}
