package vault

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/passgenx/pkg/core"
)

const eventBuffer = 16

// Watch reloads the store whenever the vault file changes on disk, for
// instance after a hand edit, and emits one event per reload. The channel is
// closed when ctx is done or the watcher fails.
//
// The parent directory is watched rather than the file, because atomic
// writes replace the file and would drop a watch on it.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, eventBuffer)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()

		if err := s.watchLoop(ctx, watcher, events); err != nil {
			s.logger.Error("vault watcher stopped", "path", s.path, "error", err)
			return err
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("vault watcher panic", "path", s.path, "error", err)
	}))

	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !s.isVaultEvent(event) {
				continue
			}

			s.logger.Debug("vault file changed", "op", event.Op.String())
			e := s.reloadEvent()
			select {
			case events <- e:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error("fsnotify error", "error", err)
		}
	}
}

// isVaultEvent filters out chmod-only events, our own temp files and
// unrelated files in the vault directory.
func (s *Store) isVaultEvent(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), TempFilePrefix) {
		return false
	}
	if filepath.Clean(event.Name) != filepath.Clean(s.path) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (s *Store) reloadEvent() core.Event {
	status := s.Reload()

	eType := core.EventReload
	switch status {
	case LoadMissing:
		eType = core.EventRemove
	case LoadCorrupted, LoadUnreadable:
		eType = core.EventCorrupt
	}

	return core.Event{
		Type:      eType,
		Path:      s.path,
		Entries:   s.Len(),
		Timestamp: time.Now().Unix(),
	}
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
