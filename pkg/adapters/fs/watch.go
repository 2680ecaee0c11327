package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

// Watch reports external changes to the notes file until ctx is done. The
// watcher observes the parent directory rather than the file itself so that
// deletes, recreates and the misplacement rename are all seen.
//
// The core is synchronous; this is an opt-in convenience for hosts that want
// to notice another process touching the file. Events only describe the
// change, they never mutate the collection.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if ev.Name != r.path {
					continue
				}
				out, relevant := translate(ev)
				if !relevant {
					continue
				}
				select {
				case events <- out:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				r.logger.Warn("watcher error", "error", err)
			}
		}
	})

	return events, nil
}

func translate(ev fsnotify.Event) (core.Event, bool) {
	out := core.Event{Path: ev.Name, Timestamp: time.Now().Unix()}
	switch {
	case ev.Op.Has(fsnotify.Create):
		out.Type = core.EventCreate
	case ev.Op.Has(fsnotify.Write):
		out.Type = core.EventModify
	case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
		out.Type = core.EventRemove
	default:
		return out, false
	}
	return out, true
}

var _ core.Watchable = (*Repository)(nil)
