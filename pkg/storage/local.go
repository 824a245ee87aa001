package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes media to a directory on disk, one subdirectory per kind.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	for _, kind := range []Kind{KindAvatar, KindImage, KindVideo} {
		if err := os.MkdirAll(filepath.Join(baseDir, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) Save(kind Kind, ext string, r io.Reader) (string, error) {
	name := NewFileName(ext)
	path := filepath.Join(s.baseDir, string(kind), name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}

func (s *LocalStore) Delete(kind Kind, name string) error {
	path := filepath.Join(s.baseDir, string(kind), filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Path returns the on-disk location for a stored name, for serving files
// directly from the router.
func (s *LocalStore) Path(kind Kind, name string) string {
	return filepath.Join(s.baseDir, string(kind), filepath.Base(name))
}

// BaseDir returns the root of the media area.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}
