package fs

import (
	"os"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	Bytes  int64  `json:"bytes"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	st := RepositoryState{Path: r.path}
	if info, err := os.Stat(r.path); err == nil {
		st.Exists = true
		st.Bytes = info.Size()
	}
	return st
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
