package core

import (
	"context"
	"fmt"
)

// DataVersion is the current version of both persisted file formats.
const DataVersion = 1

// FileShape is the decoded top-level form of the persisted notes file,
// resolved once at the repository boundary. Exactly two shapes exist: the
// current versioned envelope and the legacy bare list.
type FileShape interface {
	isFileShape()
}

// Envelope is the versioned {version, notes} wrapper. It is the only shape
// ever written; Version above DataVersion is accepted on read with a warning
// (forward-tolerant).
type Envelope struct {
	Version int
	Records []Record
}

// LegacyList is the pre-envelope bare array of records. Accepted on read,
// always rewritten as an Envelope on the next save.
type LegacyList struct {
	Records []Record
}

func (Envelope) isFileShape()   {}
func (LegacyList) isFileShape() {}

// Repository is the persistence port for the note store. Adhering to this
// interface keeps the core independent of the underlying storage mechanism.
type Repository interface {
	// Read decodes the persisted file into one of the two FileShapes.
	// A missing file surfaces as an error satisfying errors.Is(err,
	// fs.ErrNotExist); undecodable content wraps ErrCorrupted.
	Read(ctx context.Context) (FileShape, error)

	// Write overwrites the file with the envelope. The write is
	// deliberately not atomic: a crash mid-write leaves a corrupted file,
	// which the next Read reports as such. Losing data is part of this
	// domain, not a defect to engineer away.
	Write(ctx context.Context, env Envelope) error
}

// Misplacer is the pluggable "Manager-chan lost the file" strategy: move the
// persisted file out of the way so the next read starts fresh. Repositories
// that do not implement it simply never lose whole files.
type Misplacer interface {
	// Misplace renames the file aside and returns its new location.
	// ErrMisplaced when there is nothing to lose.
	Misplace(ctx context.Context) (string, error)
}

// EventType classifies an external change to the persisted file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventRemove EventType = "REMOVE"
)

// Event reports that something other than this process touched the notes
// file. Consumers typically respond by calling Load again.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

// Watchable is implemented by repositories that can report external changes
// to the persisted file. The returned channel closes when ctx is done.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
