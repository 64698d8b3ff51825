// Package state persists the outcome of previous runs.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileName is the state file kept inside the build directory.
const FileName = "mesonci-state.json"

// Store implements ports.RunStore using a flat JSON file.
type Store struct {
	fs   afero.Fs
	path string

	mu     sync.RWMutex
	cache  map[string]domain.RunRecord
	loaded bool
}

// NewStore creates a Store at <domain.BuildDir>/FileName on the OS filesystem.
func NewStore() *Store {
	return NewStoreWithFs(afero.NewOsFs(), filepath.Join(domain.BuildDir, FileName))
}

// NewStoreWithFs creates a Store backed by the file at path on fs.
// The file is read on first use.
func NewStoreWithFs(fs afero.Fs, path string) *Store {
	return &Store{
		fs:    fs,
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunRecord),
	}
}

func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read run state"), "path", s.path)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.cache); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to unmarshal run state"), "path", s.path)
		}
	}
	s.loaded = true
	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run state")
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for run state")
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write run state"), "path", s.path)
	}
	return nil
}

// Get retrieves the record for host.
func (s *Store) Get(host string) (*domain.RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	record, ok := s.cache[host]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and writes the file.
func (s *Store) Put(record domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	s.cache[record.Host] = record
	return s.save()
}
