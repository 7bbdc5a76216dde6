// Package state persists the small key-value blob s9s keeps between
// invocations (for example the last job ID submitted). The blob is a JSON
// object of strings stored at ~/.s9s/s9s.state; it is read on first use and
// rewritten in full by every Set.
//
// No locking is performed. Two concurrent s9s processes writing the state
// file race and the last writer wins.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is a lazily loaded view of one state file.
type Store struct {
	path   string
	loaded bool
	values map[string]string
}

// New returns a store bound to path. Nothing is read until the first query.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	if s.loaded {
		return nil
	}
	s.values = make(map[string]string)

	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read state file: %w", err)
	}

	if len(content) > 0 {
		if err := json.Unmarshal(content, &s.values); err != nil {
			return fmt.Errorf("decode state file %s: %w", s.path, err)
		}
	}
	// A file holding JSON null decodes into a nil map.
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.loaded = true
	return nil
}

// Get returns the value stored under key and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	if err := s.load(); err != nil {
		return "", false, err
	}
	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and rewrites the whole state file, creating its
// directory when needed.
func (s *Store) Set(key, value string) error {
	if err := s.load(); err != nil {
		return err
	}
	s.values[key] = value
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	content, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	content = append(content, '\n')

	if err := os.WriteFile(s.path, content, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
