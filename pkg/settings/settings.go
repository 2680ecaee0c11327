// Package settings is the versioned key/value configuration store.
//
// Settings live in a flat JSON mapping on disk. Loading merges the file
// over built-in defaults; a version mismatch forces the version to the
// current value, re-merges any missing keys and rewrites the file.
// Accessors have no hidden I/O: Set only mutates memory and fires the
// on-change callback, persistence happens in Save (the CLI wires the
// callback back to Save to keep the classic auto-save feel).
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/viper"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

// Setting keys.
const (
	KeyVersion             = "version"
	KeyForgetEnabled       = "forget_enabled"
	KeyForgetDelayDays     = "forget_delay_days"
	KeyForgetWindowDays    = "forget_window_days"
	KeyForgetBaseProb      = "forget_base_probability"
	KeyMisspellEnabled     = "misspell_enabled"
	KeyMisspellProbability = "misspell_probability"
	KeyMisspellSaves       = "misspell_saves_permanently"
	KeyDefaultSort         = "default_sort"
	KeyShowManagerChan     = "show_manager_chan"
)

// Default values.
const (
	DefaultForgetDelayDays     = 7
	DefaultForgetWindowDays    = 14
	DefaultForgetProbability   = 0.15
	DefaultMisspellProbability = 0.10
	DefaultSort                = core.SortPriority
)

type kind int

const (
	kindBool kind = iota
	kindInt
	kindFloat
	kindString
)

var keyKinds = map[string]kind{
	KeyVersion:             kindInt,
	KeyForgetEnabled:       kindBool,
	KeyForgetDelayDays:     kindInt,
	KeyForgetWindowDays:    kindInt,
	KeyForgetBaseProb:      kindFloat,
	KeyMisspellEnabled:     kindBool,
	KeyMisspellProbability: kindFloat,
	KeyMisspellSaves:       kindBool,
	KeyDefaultSort:         kindString,
	KeyShowManagerChan:     kindBool,
}

// Keys returns all known setting keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(keyKinds))
	for k := range keyKinds {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Settings is the application configuration store. One instance per run,
// loaded once at startup. Not safe for concurrent use; the process is
// single-session by design.
type Settings struct {
	v        *viper.Viper
	path     string
	logger   *slog.Logger
	onChange func(key string)
}

// Config holds the configuration for the settings store.
type Config struct {
	// Path is the settings file location, e.g.
	// ".../manager_chan_settings.json".
	Path   string
	Logger *slog.Logger

	// OnChange, when set, fires after every successful Set with the key
	// that changed.
	OnChange func(key string)
}

// Load reads the settings file, merging it over defaults. A missing or
// unreadable file degrades to pure defaults; that is never an error. A
// version mismatch is migrated and rewritten immediately.
func Load(cfg Config) *Settings {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	v := viper.New()
	v.SetConfigFile(cfg.Path)
	v.SetConfigType("json")
	setDefaults(v)

	s := &Settings{v: v, path: cfg.Path, logger: logger, onChange: cfg.OnChange}

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("no settings file, using defaults", "path", cfg.Path)
		} else {
			logger.Warn("settings file unreadable, using defaults", "path", cfg.Path, "error", err)
		}
		return s
	}

	if got := v.GetInt(KeyVersion); got != core.DataVersion {
		logger.Warn("settings version mismatch, migrating",
			"found", got, "expected", core.DataVersion)
		v.Set(KeyVersion, core.DataVersion)
		// Defaults already backfill keys the old version lacked; rewrite
		// so the stray version never comes back.
		if err := s.Save(); err != nil {
			logger.Warn("failed to rewrite migrated settings", "error", err)
		}
	}

	return s
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyVersion, core.DataVersion)
	v.SetDefault(KeyForgetEnabled, true)
	v.SetDefault(KeyForgetDelayDays, DefaultForgetDelayDays)
	v.SetDefault(KeyForgetWindowDays, DefaultForgetWindowDays)
	v.SetDefault(KeyForgetBaseProb, DefaultForgetProbability)
	v.SetDefault(KeyMisspellEnabled, true)
	v.SetDefault(KeyMisspellProbability, DefaultMisspellProbability)
	v.SetDefault(KeyMisspellSaves, false)
	v.SetDefault(KeyDefaultSort, DefaultSort)
	v.SetDefault(KeyShowManagerChan, true)
}

// Save writes the full merged mapping (defaults plus overrides) back to the
// settings file.
func (s *Settings) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Get returns the effective value for a key, or nil for an unknown key.
func (s *Settings) Get(key string) any {
	if _, ok := keyKinds[key]; !ok {
		return nil
	}
	return s.v.Get(key)
}

// Set validates and stores a value in memory. String values are parsed
// according to the key's type, so the CLI can pass raw arguments through.
// Unknown keys, unparsable values and out-of-range probabilities are
// rejected.
func (s *Settings) Set(key string, value any) error {
	k, ok := keyKinds[key]
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}
	if key == KeyVersion {
		return errors.New("version is managed by the migration check")
	}

	parsed, err := coerce(k, value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	switch key {
	case KeyForgetBaseProb, KeyMisspellProbability:
		p := parsed.(float64)
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be between 0 and 1", key)
		}
	case KeyForgetDelayDays, KeyForgetWindowDays:
		if parsed.(int) < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	case KeyDefaultSort:
		if !slices.Contains(core.SortKeys(), parsed.(string)) {
			return fmt.Errorf("%s must be one of %v", key, core.SortKeys())
		}
	}

	s.v.Set(key, parsed)
	if s.onChange != nil {
		s.onChange(key)
	}
	return nil
}

func coerce(k kind, value any) (any, error) {
	raw, isString := value.(string)
	switch k {
	case kindBool:
		if isString {
			return strconv.ParseBool(raw)
		}
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case kindInt:
		if isString {
			return strconv.Atoi(raw)
		}
		if i, ok := value.(int); ok {
			return i, nil
		}
	case kindFloat:
		if isString {
			return strconv.ParseFloat(raw, 64)
		}
		switch v := value.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
	case kindString:
		if isString {
			return raw, nil
		}
	}
	return nil, fmt.Errorf("cannot use %T here", value)
}

// All returns the effective mapping of every known key.
func (s *Settings) All() map[string]any {
	out := make(map[string]any, len(keyKinds))
	for k := range keyKinds {
		out[k] = s.v.Get(k)
	}
	return out
}

// Version returns the stored settings version.
func (s *Settings) Version() int {
	return s.v.GetInt(KeyVersion)
}

// Forget implements core.SettingsSource.
func (s *Settings) Forget() core.ForgetConfig {
	return core.ForgetConfig{
		Enabled:         s.v.GetBool(KeyForgetEnabled),
		DelayDays:       s.v.GetInt(KeyForgetDelayDays),
		WindowDays:      s.v.GetInt(KeyForgetWindowDays),
		BaseProbability: s.v.GetFloat64(KeyForgetBaseProb),
	}
}

// Misspell implements core.SettingsSource.
func (s *Settings) Misspell() core.MisspellConfig {
	return core.MisspellConfig{
		Enabled:          s.v.GetBool(KeyMisspellEnabled),
		Probability:      s.v.GetFloat64(KeyMisspellProbability),
		SavesPermanently: s.v.GetBool(KeyMisspellSaves),
	}
}

// DefaultSort implements core.SettingsSource.
func (s *Settings) DefaultSort() string {
	return s.v.GetString(KeyDefaultSort)
}

// ShowManagerChan reports whether the UI should draw Manager-chan.
func (s *Settings) ShowManagerChan() bool {
	return s.v.GetBool(KeyShowManagerChan)
}

var _ core.SettingsSource = (*Settings)(nil)
