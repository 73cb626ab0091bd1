// Package storage holds the file-based photo store. Photo bytes stay out of
// the database; rows only reference the stored path.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PhotoStore persists product photos on the local filesystem, one file per
// product keyed by product ID.
type PhotoStore struct {
	dir string
}

// NewPhotoStore creates the storage directory if needed.
func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

func (s *PhotoStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Save writes the photo bytes and returns the stored path.
func (s *PhotoStore) Save(key string, r io.Reader) (string, error) {
	path := s.path(key)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write photo: %w", err)
	}
	return path, nil
}

// Open returns a reader over the stored photo.
func (s *PhotoStore) Open(key string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	return f, nil
}

// Remove deletes the stored photo. A missing file is not an error.
func (s *PhotoStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}
