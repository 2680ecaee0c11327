package managerchan

import (
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/DevlopRishi/manager-chan/pkg/adapters/fs"
	"github.com/DevlopRishi/manager-chan/pkg/core"
	"github.com/DevlopRishi/manager-chan/pkg/settings"
)

// Version exposes the version of the application.
const Version = "0.2.0"

// Persisted file names, resolved against the data directory.
const (
	NotesFileName    = "manager_chan_notes.json"
	SettingsFileName = "manager_chan_settings.json"
)

// options holds the internal configuration for Open.
type options struct {
	logger         *slog.Logger
	dontForget     bool
	misplaceChance float64
	repository     core.Repository
	rng            *rand.Rand
	now            func() time.Time
	autoSave       bool
}

// Option defines a functional option for configuring the application.
type Option func(*options)

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDontForget disables all forgetfulness for the session, whatever the
// persisted settings say.
func WithDontForget(dont bool) Option {
	return func(o *options) {
		o.dontForget = dont
	}
}

// WithMisplaceChance overrides the whole-file loss probability. Negative
// disables the loss simulation entirely, for contexts where the joke is
// unwanted.
func WithMisplaceChance(chance float64) Option {
	return func(o *options) {
		o.misplaceChance = chance
	}
}

// WithRepository injects a custom storage adapter (e.g. a mock). If
// provided, the default filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithRand injects the randomness source shared by forgetting and
// misspelling, so tests can seed it.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithClock injects the time source consulted by the forgetting model.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithSettingsAutoSave persists the settings file after every successful
// Set, restoring the classic auto-save behavior. Off by default so library
// callers control their own I/O.
func WithSettingsAutoSave(auto bool) Option {
	return func(o *options) {
		o.autoSave = auto
	}
}

// App bundles the wired store and settings. Construction performs no file
// I/O on the notes side; call Store.Load explicitly to populate the
// collection and get the status message.
type App struct {
	Store    *core.Store
	Settings *settings.Settings

	// NotesPath is where the collection lives on disk.
	NotesPath string
}

// Open wires settings, repository and store for the given data directory.
func Open(dir string, opts ...Option) (*App, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	notesPath := filepath.Join(dir, NotesFileName)

	var cfg *settings.Settings
	cfg = settings.Load(settings.Config{
		Path:   filepath.Join(dir, SettingsFileName),
		Logger: o.logger,
		OnChange: func(key string) {
			if !o.autoSave {
				return
			}
			if err := cfg.Save(); err != nil {
				o.logger.Warn("failed to auto-save settings", "key", key, "error", err)
			}
		},
	})

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{Path: notesPath, Logger: o.logger})
	}

	store := core.NewStore(core.StoreConfig{
		Repository:     repo,
		Settings:       cfg,
		Logger:         o.logger,
		DontForget:     o.dontForget,
		MisplaceChance: o.misplaceChance,
		Rand:           o.rng,
		Now:            o.now,
	})

	return &App{Store: store, Settings: cfg, NotesPath: notesPath}, nil
}
