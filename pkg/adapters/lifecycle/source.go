// Package lifecycle exposes vault change events as a lifecycle.Source so they
// can be consumed by lifecycle-managed supervisors.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/passgenx/pkg/core"
)

// vaultSource relays the reload, removal and corruption events of one
// watched vault file.
type vaultSource struct {
	vault <-chan core.Event
	out   chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits vault events, typically the
// channel returned by vault.Store.Watch.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &vaultSource{vault: events, out: make(chan lifecycle.Event)}
}

func (s *vaultSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start relays vault events until ctx is done or the watch stops, then
// closes Events().
func (s *vaultSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			ev, ok := s.next(ctx)
			if !ok {
				return nil
			}
			select {
			case s.out <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return nil
}

// next waits for the next vault change. It reports false once the watch has
// stopped or ctx is done.
func (s *vaultSource) next(ctx context.Context) (lifecycle.Event, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case e, ok := <-s.vault:
		if !ok {
			return nil, false
		}
		return e, true
	}
}
