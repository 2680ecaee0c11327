// Package fs persists the note collection as a single JSON file on disk.
//
// It implements core.Repository plus the optional Misplacer and Watchable
// capabilities. Writes are whole-file overwrites, deliberately not atomic:
// a crash mid-write corrupts the file and the next load starts fresh, which
// is accepted behavior in this domain.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

// Config holds the configuration for the filesystem repository.
type Config struct {
	// Path is the notes file location, e.g. ".../manager_chan_notes.json".
	Path   string
	Logger *slog.Logger
}

// Repository stores the collection in one JSON file.
type Repository struct {
	path   string
	logger *slog.Logger
}

// NewRepository creates a filesystem-backed repository. The parent
// directory is created on the first Write, not here.
func NewRepository(cfg Config) *Repository {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{path: cfg.Path, logger: logger}
}

// Path returns the notes file location.
func (r *Repository) Path() string {
	return r.path
}

// Read decodes the notes file into its tagged shape: the versioned envelope
// or the legacy bare list. A missing file returns the os error unwrapped so
// callers can errors.Is against fs.ErrNotExist; anything undecodable wraps
// core.ErrCorrupted.
func (r *Repository) Read(ctx context.Context) (core.FileShape, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	var top any
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrCorrupted, err)
	}

	switch t := top.(type) {
	case map[string]any:
		rawVersion, hasVersion := t["version"]
		rawNotes, hasNotes := t["notes"]
		if !hasVersion || !hasNotes {
			return nil, fmt.Errorf("%w: object is not a {version, notes} envelope", core.ErrCorrupted)
		}
		version := 0
		if f, ok := rawVersion.(float64); ok {
			version = int(f)
		}
		list, ok := rawNotes.([]any)
		if !ok {
			// An envelope whose notes key is not a list holds nothing
			// usable; treat it as an empty collection rather than failing.
			r.logger.Warn("notes key in envelope is not a list, starting empty")
			return core.Envelope{Version: version}, nil
		}
		return core.Envelope{Version: version, Records: r.records(list)}, nil
	case []any:
		return core.LegacyList{Records: r.records(t)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown top-level shape", core.ErrCorrupted)
	}
}

// records keeps the object entries of a decoded list, logging and skipping
// anything else. One bad entry never aborts the rest.
func (r *Repository) records(list []any) []core.Record {
	out := make([]core.Record, 0, len(list))
	for _, raw := range list {
		m, ok := raw.(map[string]any)
		if !ok {
			r.logger.Warn("skipping non-object entry in notes file", "entry", raw)
			continue
		}
		out = append(out, core.Record(m))
	}
	return out
}

// Write overwrites the notes file with the envelope. No temp-file-and-rename
// dance: see the package comment.
func (r *Repository) Write(ctx context.Context, env core.Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := env.Records
	if records == nil {
		records = []core.Record{}
	}
	payload := map[string]any{
		"version": env.Version,
		"notes":   records,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	r.logger.Debug("writing notes file", "path", r.path, "notes", len(records))
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}
	return nil
}

// Misplace implements the "Manager-chan lost the file" strategy: the notes
// file is renamed aside with a timestamp suffix so a later archaeologist can
// dig it back up.
func (r *Repository) Misplace(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return "", core.ErrMisplaced
	}

	moved := fmt.Sprintf("%s.forgotten_%d", r.path, time.Now().Unix())
	if err := os.Rename(r.path, moved); err != nil {
		return "", fmt.Errorf("failed to misplace notes file: %w", err)
	}
	r.logger.Warn("misplaced notes file", "from", r.path, "to", moved)
	return moved, nil
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Misplacer  = (*Repository)(nil)
)
