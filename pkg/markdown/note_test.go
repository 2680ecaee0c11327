package markdown

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

func sampleNote() core.NoteItem {
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	due := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return core.NoteItem{
		ID:         "abc-123",
		Text:       "water the plants",
		Notes:      "The ficus needs extra.\n\nCheck the balcony too.",
		Status:     core.StatusInProgress,
		Priority:   core.PriorityB,
		Tags:       []string{"home", "plants"},
		CreatedAt:  &created,
		ModifiedAt: &created,
		DueDate:    &due,
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	note := sampleNote()

	data, err := Marshal(note)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("---\n")))

	got, err := Parse(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, note.ID, got.ID)
	assert.Equal(t, note.Text, got.Text)
	assert.Equal(t, note.Notes, got.Notes)
	assert.Equal(t, note.Status, got.Status)
	assert.Equal(t, note.Priority, got.Priority)
	assert.Equal(t, note.Tags, got.Tags)
	require.NotNil(t, got.CreatedAt)
	assert.True(t, note.CreatedAt.Equal(*got.CreatedAt))
	require.NotNil(t, got.DueDate)
	assert.True(t, note.DueDate.Equal(*got.DueDate))
}

func TestParseWithoutFrontmatter(t *testing.T) {
	body := "just a plain markdown file\n\nwith two paragraphs\n"

	got, err := Parse(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, body, got.Notes)
	assert.NotEmpty(t, got.ID, "a fresh ID is generated")
	assert.Empty(t, got.Text)
}

func TestParseUnclosedFrontmatter(t *testing.T) {
	_, err := Parse(strings.NewReader("---\nid: abc\ntext: never closed\n"))
	assert.Error(t, err)
}

func TestParseBadYAMLFrontmatter(t *testing.T) {
	_, err := Parse(strings.NewReader("---\n\tid: tabs cannot indent yaml\n---\nbody\n"))
	assert.Error(t, err)
}

func TestExportImportDir(t *testing.T) {
	dir := t.TempDir()
	notes := []core.NoteItem{sampleNote()}
	other := sampleNote()
	other.ID = "def-456"
	other.Text = "call the dentist"
	notes = append(notes, other)

	require.NoError(t, ExportDir(dir, notes))

	for _, n := range notes {
		_, err := os.Stat(filepath.Join(dir, n.ID+".md"))
		assert.NoError(t, err)
	}

	got, err := ImportDir(dir, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[string]core.NoteItem{got[0].ID: got[0], got[1].ID: got[1]}
	assert.Equal(t, "water the plants", byID["abc-123"].Text)
	assert.Equal(t, "call the dentist", byID["def-456"].Text)
}

func TestImportDirSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()

	data, err := Marshal(sampleNote())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.md"), data, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte("---\nnever closed\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not markdown"), 0644))

	got, err := ImportDir(dir, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "abc-123", got[0].ID)
}

func TestImportDirFilenameFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shopping-list.md"), []byte("milk, eggs\n"), 0644))

	got, err := ImportDir(dir, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "shopping-list", got[0].Text)
	assert.Equal(t, "milk, eggs\n", got[0].Notes)
}
