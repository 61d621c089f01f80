// Package snapshot records composed environments in a flat JSON file.
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.tarn.ch/denv/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// DefaultStorePath is the snapshot file used when no explicit path is given.
const DefaultStorePath = ".denv/snapshots.json"

// Store implements ports.SnapshotStore using a flat JSON file keyed by
// environment ID.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Environment
}

// NewStore creates a new SnapshotStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Environment),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read snapshot store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal snapshot store")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for snapshot store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		return zerr.Wrap(err, "failed to write snapshot store")
	}

	return nil
}

// Get retrieves a recorded environment by ID.
func (s *Store) Get(id string) (*domain.Environment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	env, ok := s.cache[id]
	if !ok {
		return nil, nil
	}
	return &env, nil
}

// Put records the environment.
func (s *Store) Put(env domain.Environment) error {
	s.mu.Lock()
	s.cache[env.ID] = env
	s.mu.Unlock()

	return s.save()
}
