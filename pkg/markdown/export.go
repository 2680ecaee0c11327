package markdown

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

// ExportDir writes one <id>.md file per note into dir, creating it if
// needed. Existing files with the same IDs are overwritten.
func ExportDir(dir string, notes []core.NoteItem) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	for _, n := range notes {
		data, err := Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to serialize note %s: %w", n.ID, err)
		}
		path := filepath.Join(dir, n.ID+".md")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// ImportDir reads every .md file in dir back into notes. A file that fails
// to parse is logged and skipped; one bad file never aborts the rest.
func ImportDir(dir string, logger *slog.Logger) ([]core.NoteItem, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read import directory: %w", err)
	}

	var notes []core.NoteItem
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		item, err := Parse(f)
		f.Close()
		if err != nil {
			logger.Warn("skipping unparsable file", "path", path, "error", err)
			continue
		}
		if item.Text == "" {
			// Fall back to the filename so the note is findable.
			item.Text = strings.TrimSuffix(entry.Name(), ".md")
		}
		notes = append(notes, item)
	}
	return notes, nil
}
