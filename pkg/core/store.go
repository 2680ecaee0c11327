package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"time"
)

// DefaultMisplaceChance is the per-load probability that Manager-chan loses
// the whole notes file. Independent of the per-item forgetting model.
const DefaultMisplaceChance = 0.005

// SettingsSource is the store's read-only view of the application settings.
type SettingsSource interface {
	Forget() ForgetConfig
	Misspell() MisspellConfig
	DefaultSort() string
}

// LoadOutcome names the state the store ended up in after a Load.
type LoadOutcome int

const (
	// OutcomeFresh means no file existed; the collection starts empty.
	OutcomeFresh LoadOutcome = iota
	// OutcomeLoaded means the file parsed and forgetting was applied.
	OutcomeLoaded
	// OutcomeCorrupted means the file could not be parsed; the collection
	// was reset to empty.
	OutcomeCorrupted
	// OutcomeLost means the file was misplaced before it could be read.
	OutcomeLost
)

func (o LoadOutcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeCorrupted:
		return "corrupted-reset"
	case OutcomeLost:
		return "lost"
	default:
		return "fresh"
	}
}

// StoreConfig wires a Store's collaborators. Repository and Settings are
// required; everything else has a usable zero value.
type StoreConfig struct {
	Repository Repository
	Settings   SettingsSource
	Logger     *slog.Logger

	// DontForget disables all forgetfulness for the session, regardless
	// of the persisted forget_enabled setting.
	DontForget bool

	// MisplaceChance overrides DefaultMisplaceChance. Negative disables
	// whole-file loss entirely.
	MisplaceChance float64

	// Rand and Now are injectable for deterministic tests.
	Rand *rand.Rand
	Now  func() time.Time
}

// Store owns the in-memory note collection and drives it through the
// persistence port. All operations are synchronous and run on the calling
// goroutine; the presentation layer is the sole caller and serializes its
// own calls. Mutations are in-memory only until Save is invoked.
type Store struct {
	repo     Repository
	settings SettingsSource
	logger   *slog.Logger

	dontForget     bool
	misplaceChance float64
	rng            *rand.Rand
	now            func() time.Time

	notes     []NoteItem
	outcome   LoadOutcome
	forgotten int // items dropped by the last Load
}

// NewStore creates a Store. It does not touch the file; call Load to
// populate the collection.
func NewStore(cfg StoreConfig) *Store {
	s := &Store{
		repo:           cfg.Repository,
		settings:       cfg.Settings,
		logger:         cfg.Logger,
		dontForget:     cfg.DontForget,
		misplaceChance: cfg.MisplaceChance,
		rng:            cfg.Rand,
		now:            cfg.Now,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.misplaceChance == 0 {
		s.misplaceChance = DefaultMisplaceChance
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Forgetting reports whether forgetfulness is live for this session: the
// persisted forget_enabled setting, overridable by the --dont-forget flag.
// Both the per-item forgetting draw and the whole-file loss draw use this
// one gate.
func (s *Store) Forgetting() bool {
	return !s.dontForget && s.settings.Forget().Enabled
}

// Load replaces the in-memory collection from the persisted file, applying
// the forgetting model to each record. It always leaves the store in a
// valid, usable state and reports what happened as a status string plus a
// mood for the presentation layer.
func (s *Store) Load(ctx context.Context) (string, Mood) {
	forgetting := s.Forgetting()

	// Step 1: rarely, lose the entire file before even looking at it.
	if forgetting && s.rng.Float64() < s.misplaceChance {
		if mp, ok := s.repo.(Misplacer); ok {
			moved, err := mp.Misplace(ctx)
			if err == nil {
				s.notes = nil
				s.forgotten = 0
				s.outcome = OutcomeLost
				s.logger.Warn("notes file misplaced", "moved_to", moved)
				return fmt.Sprintf("EHHHH?! Where did I put the notes file?! I can't find it! Starting over... Gomen! (it went to %s)", moved), MoodSad
			}
			if !errors.Is(err, ErrMisplaced) {
				s.logger.Warn("failed to misplace notes file, loading normally", "error", err)
			}
		}
	}

	// Step 2: read and resolve the file shape.
	shape, err := s.repo.Read(ctx)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		s.notes = nil
		s.forgotten = 0
		s.outcome = OutcomeFresh
		return "No notes file found. Starting fresh!", MoodIdle
	default:
		s.notes = nil
		s.forgotten = 0
		s.outcome = OutcomeCorrupted
		s.logger.Warn("notes file unreadable, resetting", "error", err)
		return fmt.Sprintf("Notes file is corrupted or invalid (%v). Starting fresh!", err), MoodSad
	}

	var records []Record
	switch t := shape.(type) {
	case Envelope:
		if t.Version > DataVersion {
			s.logger.Warn("notes file version is newer than this app",
				"file_version", t.Version, "app_version", DataVersion)
		}
		records = t.Records
	case LegacyList:
		s.logger.Info("old note format detected, will rewrite as envelope on save")
		records = t.Records
	}

	// Step 3: deserialize each record and give Manager-chan her chance to
	// forget it.
	fcfg := s.settings.Forget()
	now := s.now()
	remembered := make([]NoteItem, 0, len(records))
	forgotten := 0
	for _, rec := range records {
		item := ItemFromRecord(rec)
		chance := ForgetChance(item, fcfg, now)
		if forgetting && s.rng.Float64() < chance {
			forgotten++
			s.logger.Debug("forgot a note", "id", item.ID, "chance", chance)
			continue
		}
		remembered = append(remembered, item)
	}

	s.notes = remembered
	s.forgotten = forgotten
	s.outcome = OutcomeLoaded
	if forgotten > 0 {
		return fmt.Sprintf("Loaded %d notes... but %d seemed to vanish! Gomen!", len(remembered), forgotten), MoodSad
	}
	return fmt.Sprintf("Loaded %d notes!", len(remembered)), MoodIdle
}

// Save serializes the whole collection into the versioned envelope and
// overwrites the file. On failure the in-memory collection is untouched and
// the error text is carried in the status. When the
// misspell_saves_permanently setting is on, each note's text is run through
// the mutator first, so the typos stick.
func (s *Store) Save(ctx context.Context) (string, Mood) {
	mcfg := s.settings.Misspell()
	if mcfg.Enabled && mcfg.SavesPermanently {
		for i := range s.notes {
			if mutated, ok := Misspell(s.notes[i].Text, mcfg.Probability, s.rng); ok {
				s.notes[i].Text = mutated
			}
		}
	}

	records := make([]Record, len(s.notes))
	for i, n := range s.notes {
		records[i] = n.Record()
	}

	env := Envelope{Version: DataVersion, Records: records}
	if err := s.repo.Write(ctx, env); err != nil {
		s.logger.Error("failed to save notes", "error", err)
		return fmt.Sprintf("Waaah! Something went wrong: %v", err), MoodSad
	}
	return fmt.Sprintf("Saved %d notes! Phew!", len(s.notes)), MoodHappy
}

// Add stamps the note's modification time and appends it. Collection order
// is insertion order; display order is the view pipeline's business.
func (s *Store) Add(item NoteItem) {
	now := s.now().Truncate(time.Second)
	item.ModifiedAt = &now
	if item.CreatedAt == nil {
		item.CreatedAt = &now
	}
	item.Tags = NormalizeTags(item.Tags)
	s.notes = append(s.notes, item)
}

// Update replaces the note with the same ID, stamping its modification
// time. Reports whether the ID was found.
func (s *Store) Update(item NoteItem) bool {
	for i, n := range s.notes {
		if n.ID == item.ID {
			now := s.now().Truncate(time.Second)
			item.ModifiedAt = &now
			item.Tags = NormalizeTags(item.Tags)
			s.notes[i] = item
			return true
		}
	}
	return false
}

// Delete removes every note with the given ID (there should be at most
// one). Reports whether anything was removed.
func (s *Store) Delete(id string) bool {
	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	removed := len(kept) < len(s.notes)
	s.notes = kept
	return removed
}

// Find returns the note with the given ID. Linear scan; the collection is
// tens to low thousands of items.
func (s *Store) Find(id string) (NoteItem, error) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return NoteItem{}, ErrNotFound
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []NoteItem {
	out := make([]NoteItem, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes currently remembered.
func (s *Store) Len() int {
	return len(s.notes)
}

// Outcome reports the state the last Load left the store in.
func (s *Store) Outcome() LoadOutcome {
	return s.outcome
}

// Forgotten reports how many records the last Load dropped.
func (s *Store) Forgotten() int {
	return s.forgotten
}

// View runs the filter, search and sort pipeline over a snapshot of the
// collection. An empty sortKey uses the default_sort setting.
func (s *Store) View(sortKey string, filters Filters, query string) []NoteItem {
	if sortKey == "" {
		sortKey = s.settings.DefaultSort()
	}
	return View(s.All(), sortKey, filters, query)
}

// Render applies the display-only misspelling to a piece of text using the
// session's settings and randomness. The collection is never touched.
func (s *Store) Render(text string) (string, bool) {
	mcfg := s.settings.Misspell()
	if !mcfg.Enabled {
		return text, false
	}
	return Misspell(text, mcfg.Probability, s.rng)
}
