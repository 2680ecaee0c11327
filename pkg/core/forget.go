package core

import (
	"math"
	"time"
)

// ForgetConfig is the slice of the application settings consumed by the
// forgetting model.
type ForgetConfig struct {
	Enabled         bool
	DelayDays       int     // grace period before forgetting can start
	WindowDays      int     // ramp from zero to BaseProbability over this many days
	BaseProbability float64 // ceiling of the forget chance
}

// ForgetChance maps a note's age to the probability that Manager-chan has
// forgotten it. The chance is zero through the grace period, rises linearly
// across the window and flattens at BaseProbability: a monotonic, bounded,
// deterministic function of age for fixed settings. Randomness is applied
// exactly once, by the caller, as a single Bernoulli draw against the
// returned value.
func ForgetChance(item NoteItem, cfg ForgetConfig, now time.Time) float64 {
	if !cfg.Enabled {
		return 0
	}
	last := item.LastTouched()
	if last == nil {
		// No temporal anchor, nothing to age against.
		return 0
	}

	delay := max(cfg.DelayDays, 0)
	window := max(cfg.WindowDays, 0)
	base := math.Min(math.Max(cfg.BaseProbability, 0), 1)

	ageDays := int(math.Floor(now.Sub(*last).Hours() / 24))
	if ageDays < delay || window <= 0 {
		return 0
	}

	progress := math.Min(1, float64(ageDays-delay)/float64(window))
	return math.Min(base*progress, 1)
}
