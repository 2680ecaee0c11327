package settings

import (
	"github.com/aretw0/introspection"
)

// State implements introspection.Introspectable: the effective mapping plus
// where it came from.
func (s *Settings) State() any {
	state := s.All()
	state["path"] = s.path
	return state
}

// ComponentType implements introspection.Component.
func (s *Settings) ComponentType() string {
	return "settings"
}

var _ introspection.Introspectable = (*Settings)(nil)
var _ introspection.Component = (*Settings)(nil)
