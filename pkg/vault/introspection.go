package vault

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	Entries       int        `json:"entries"`
	LoadStatus    string     `json:"load_status"`
	LoadError     string     `json:"load_error,omitempty"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	WatcherActive bool       `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := StoreState{
		Path:          s.path,
		Entries:       len(s.entries),
		LoadStatus:    s.status.String(),
		LastLoad:      s.lastLoad,
		WatcherActive: s.watcherActive,
	}
	if s.loadErr != nil {
		state.LoadError = s.loadErr.Error()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "vault"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
