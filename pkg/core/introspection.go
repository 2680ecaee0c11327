package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes      int    `json:"notes"`
	Forgotten  int    `json:"forgotten"`
	Outcome    string `json:"outcome"`
	Forgetting bool   `json:"forgetting"`
	Repository string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	repoType := "repository"
	if comp, ok := s.repo.(introspection.Component); ok {
		repoType = comp.ComponentType()
	}

	return StoreState{
		Notes:      len(s.notes),
		Forgotten:  s.forgotten,
		Outcome:    s.outcome.String(),
		Forgetting: s.Forgetting(),
		Repository: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "note-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
