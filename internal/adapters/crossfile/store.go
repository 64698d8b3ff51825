// Package crossfile stores Meson cross-compilation descriptors.
package crossfile

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/zerr"
)

const filePerm = 0o644

// Store implements ports.CrossFileStore on top of an afero filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore creates a Store backed by the OS filesystem.
func NewStore() *Store {
	return NewStoreWithFs(afero.NewOsFs())
}

// NewStoreWithFs creates a Store backed by fs.
func NewStoreWithFs(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// ReadTemplate returns the template at path.
func (s *Store) ReadTemplate(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		return "", zerr.With(zerr.Wrap(domain.ErrTemplateNotFound, "failed to read cross file template"), "path", path)
	}
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read cross file template"), "path", path)
	}
	return string(data), nil
}

// Write stores content at path, creating parent directories as needed.
func (s *Store) Write(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create cross file directory"), "path", dir)
		}
	}
	if err := afero.WriteFile(s.fs, path, []byte(content), filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cross file"), "path", path)
	}
	return nil
}

// Remove deletes the descriptor at path.
func (s *Store) Remove(path string) error {
	err := s.fs.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return zerr.With(zerr.Wrap(err, "failed to remove cross file"), "path", path)
}
