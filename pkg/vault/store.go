// Package vault is the identifier store: a small domain -> identifier mapping
// persisted as a hand-editable YAML file.
//
// Identifiers are not secret; the file is not encrypted. Loading never fails
// because of a missing or damaged file: the store starts empty and reports
// why through LoadStatus. There is no file locking. Two processes writing
// the same vault concurrently race and the last writer wins.
package vault

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/passgenx/pkg/core"
)

const (
	// IdentifierBytes is the amount of randomness in a minted identifier.
	// It is hex encoded, so identifiers are twice as long.
	IdentifierBytes = 8

	dirPerm  fs.FileMode = 0o700
	filePerm fs.FileMode = 0o600
)

// LoadStatus describes how the mapping was obtained on the last (re)load.
type LoadStatus int

const (
	LoadOK LoadStatus = iota
	// LoadMissing means no vault file exists yet.
	LoadMissing
	// LoadCorrupted means the file exists but could not be parsed.
	LoadCorrupted
	// LoadUnreadable means the file could not be read at all.
	LoadUnreadable
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadCorrupted:
		return "corrupted"
	case LoadUnreadable:
		return "unreadable"
	}
	return fmt.Sprintf("LoadStatus(%d)", int(s))
}

// Config holds the configuration for the identifier store.
type Config struct {
	Path   string     // vault file, e.g. ~/.passgenx/vault.yml
	FS     FileSystem // defaults to OSFileSystem
	Logger *slog.Logger
	Rand   io.Reader // defaults to crypto/rand.Reader
}

// Store owns the in-memory mapping and the vault file.
type Store struct {
	mu sync.RWMutex

	path   string
	fs     FileSystem
	logger *slog.Logger
	rand   io.Reader

	entries       map[string]string
	status        LoadStatus
	loadErr       error
	lastLoad      *time.Time
	watcherActive bool
}

// Open creates the vault directory if needed and loads the mapping.
// A missing or corrupted vault file yields an empty store, not an error;
// the only failure is being unable to create the directory.
func Open(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("%w: vault path must not be empty", core.ErrInvalidArgument)
	}

	s := &Store{
		path:   config.Path,
		fs:     config.FS,
		logger: config.Logger,
		rand:   config.Rand,
	}
	if s.fs == nil {
		s.fs = OSFileSystem{}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.rand == nil {
		s.rand = rand.Reader
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return nil, fmt.Errorf("%w: failed to create vault directory: %w", core.ErrIO, err)
	}

	s.Reload()
	return s, nil
}

// Reload re-reads the vault file, replacing the in-memory mapping.
func (s *Store) Reload() LoadStatus {
	entries, status, err := s.load()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.entries = entries
	s.status = status
	s.loadErr = err
	s.lastLoad = &now
	return status
}

func (s *Store) load() (map[string]string, LoadStatus, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("vault file not found, starting empty", "path", s.path)
			return map[string]string{}, LoadMissing, nil
		}
		s.logger.Warn("vault file unreadable, starting empty", "path", s.path, "error", err)
		return map[string]string{}, LoadUnreadable, err
	}

	entries, err := decode(data)
	if err != nil {
		s.logger.Warn("vault file corrupted, starting empty", "path", s.path, "error", err)
		return map[string]string{}, LoadCorrupted, err
	}

	s.logger.Debug("vault loaded", "path", s.path, "entries", len(entries))
	return entries, LoadOK, nil
}

// LoadStatus reports the outcome of the last load.
func (s *Store) LoadStatus() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// LoadError returns the error behind a LoadCorrupted or LoadUnreadable status.
func (s *Store) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Path returns the location of the vault file.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored domains.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetIdentifier looks up the identifier stored for domain. Lookup is exact
// and case-sensitive.
func (s *Store) GetIdentifier(domain string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.entries[domain]
	return id, ok
}

// StoreIdentifier sets the identifier for domain and rewrites the vault file.
// If the write fails the in-memory mapping is left as it was.
func (s *Store) StoreIdentifier(domain, identifier string) error {
	if domain == "" {
		return fmt.Errorf("%w: domain must not be empty", core.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[domain]
	s.entries[domain] = identifier
	if err := s.persist(); err != nil {
		if existed {
			s.entries[domain] = prev
		} else {
			delete(s.entries, domain)
		}
		return err
	}

	s.logger.Debug("identifier stored", "domain", domain, "replaced", existed)
	return nil
}

// GenerateAndStore mints a random identifier for domain, stores it and
// returns it. The identifier is IdentifierBytes of crypto/rand output in
// lowercase hex.
func (s *Store) GenerateAndStore(domain string) (string, error) {
	id, err := s.NewIdentifier()
	if err != nil {
		return "", err
	}
	if err := s.StoreIdentifier(domain, id); err != nil {
		return "", err
	}
	return id, nil
}

// NewIdentifier mints a random identifier without storing it.
func (s *Store) NewIdentifier() (string, error) {
	b := make([]byte, IdentifierBytes)
	if _, err := io.ReadFull(s.rand, b); err != nil {
		return "", fmt.Errorf("failed to read random identifier: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Delete removes domain from the vault. It reports whether the domain was present.
func (s *Store) Delete(domain string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.entries[domain]
	if !ok {
		return false, nil
	}

	delete(s.entries, domain)
	if err := s.persist(); err != nil {
		s.entries[domain] = prev
		return false, err
	}

	s.logger.Debug("identifier deleted", "domain", domain)
	return true, nil
}

// ListDomains returns the stored domains. The result is sorted for stable
// output, but callers should not rely on any order.
func (s *Store) ListDomains() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	domains := make([]string, 0, len(s.entries))
	for d := range s.entries {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// persist writes the full mapping. Callers hold s.mu.
func (s *Store) persist() error {
	data, err := encode(s.entries)
	if err != nil {
		return fmt.Errorf("%w: failed to encode vault: %w", core.ErrIO, err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("%w: failed to create vault directory: %w", core.ErrIO, err)
	}

	if err := s.fs.WriteFile(s.path, data, filePerm); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", core.ErrIO, s.path, err)
	}

	s.status = LoadOK
	s.loadErr = nil
	return nil
}
