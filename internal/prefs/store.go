package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

const fileVersion = "1.0"

// File is the JSON document backing a Store.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// Store is a durable string key/value store persisted as a single JSON file.
// Every Set is written through to disk.
type Store struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

// Open creates the parent directory if needed and loads existing values.
// A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, lumenerrors.NewStorageError(path, "create directory", err)
	}

	if err := s.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return lumenerrors.NewStorageError(s.path, "load", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return lumenerrors.NewStorageError(s.path, "load", err)
	}

	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get returns the stored value for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Set stores value under key and saves the file. On a failed save the
// in-memory value is rolled back so memory never runs ahead of disk.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.saveLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}

	return nil
}

// Delete removes key and saves the file.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	if !existed {
		return nil
	}
	delete(s.values, key)

	if err := s.saveLocked(); err != nil {
		s.values[key] = previous
		return err
	}

	return nil
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(File{Version: fileVersion, Values: s.values}, "", "  ")
	if err != nil {
		return lumenerrors.NewStorageError(s.path, "marshal", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return lumenerrors.NewStorageError(tmpPath, "save", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return lumenerrors.NewStorageError(s.path, "save", err)
	}

	return nil
}

// Memory is an in-process store for tests and ephemeral sessions.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
