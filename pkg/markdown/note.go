// Package markdown converts notes to and from Markdown files with YAML
// frontmatter, one file per note. It exists for interop with plain-text
// note vaults; the JSON store remains the source of truth.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

// Marshal serializes a note as YAML frontmatter plus its long-form body.
func Marshal(item core.NoteItem) ([]byte, error) {
	meta := item.Record()
	delete(meta, "notes") // the body carries it

	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string]any(meta)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")
	buf.WriteString(item.Notes)
	return buf.Bytes(), nil
}

// Parse reads a stream and decodes it into a note. A frontmatter block
// (delimited by ---) supplies the metadata; everything after it becomes the
// note body. A file without frontmatter is all body.
func Parse(r io.Reader) (core.NoteItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.NoteItem{}, err
	}

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		rec := core.Record{}
		item := core.ItemFromRecord(rec)
		item.Notes = string(data)
		return item, nil
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("---"), 2)
	if len(parts) == 1 {
		return core.NoteItem{}, errors.New("frontmatter started but no closing delimiter found")
	}

	var meta map[string]any
	if err := yaml.Unmarshal(parts[0], &meta); err != nil {
		return core.NoteItem{}, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	item := core.ItemFromRecord(core.Record(meta))
	body := strings.TrimPrefix(string(parts[1]), "\n")
	body = strings.TrimPrefix(body, "\r\n")
	item.Notes = body
	return item, nil
}
