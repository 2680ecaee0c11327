package core

import (
	"math/rand"
	"slices"
	"strings"
	"time"
	"unicode"
)

const (
	// Words this short are never mutated; a typo in "to" reads as a
	// different word, not a slip.
	minMisspellLen = 4

	// Duplication stops once a word reaches this length to bound growth
	// across repeated renders.
	maxDuplicateLen = 30
)

// MisspellConfig is the slice of the application settings consumed by the
// misspelling mutator.
type MisspellConfig struct {
	Enabled          bool
	Probability      float64
	SavesPermanently bool // write mutations back to storage instead of render-only
}

// Misspell sometimes introduces a single small typo into text. With
// probability 1-p, or when the input is empty, the text comes back
// untouched. Otherwise one word longer than three characters is picked
// uniformly (by value, then re-resolved uniformly across its occurrences so
// repeated words carry no positional bias) and one of four edits is applied
// at a random character position: swap adjacent, replace with a random
// letter (case preserved), delete, or duplicate.
//
// When the chosen edit is inapplicable at the chosen position (swap at the
// last character, delete from a one-letter word, duplicate past the growth
// bound) the text comes back unchanged rather than retrying. Manager-chan
// only gets one attempt per glance.
//
// Words are rejoined with single spaces, so any multi-space formatting in
// the input collapses.
func Misspell(text string, probability float64, rng *rand.Rand) (string, bool) {
	if text == "" || probability <= 0 {
		return text, false
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if rng.Float64() > probability {
		return text, false
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text, false
	}

	var eligible []string
	for _, w := range words {
		if len([]rune(w)) >= minMisspellLen {
			eligible = append(eligible, w)
		}
	}
	if len(eligible) == 0 {
		return text, false
	}

	target := eligible[rng.Intn(len(eligible))]
	var occurrences []int
	for i, w := range words {
		if w == target {
			occurrences = append(occurrences, i)
		}
	}
	idx := occurrences[rng.Intn(len(occurrences))]

	runes := []rune(target)
	pos := rng.Intn(len(runes))

	switch rng.Intn(4) {
	case 0: // swap adjacent
		if pos >= len(runes)-1 {
			return text, false
		}
		runes[pos], runes[pos+1] = runes[pos+1], runes[pos]
	case 1: // replace, preserving case
		r := rune('a' + rng.Intn(26))
		if unicode.IsUpper(runes[pos]) {
			r = unicode.ToUpper(r)
		}
		runes[pos] = r
	case 2: // delete
		if len(runes) <= 1 {
			return text, false
		}
		runes = slices.Delete(runes, pos, pos+1)
	case 3: // duplicate
		if len(runes) >= maxDuplicateLen {
			return text, false
		}
		runes = slices.Insert(runes, pos, runes[pos])
	}

	words[idx] = string(runes)
	return strings.Join(words, " "), true
}
