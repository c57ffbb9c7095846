package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage persists exported files on disk under a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage returns a handle rooted at baseDir. The directory is
// created on the first save.
func NewLocalStorage(baseDir string) *LocalStorage {
	if baseDir == "" {
		baseDir = "./exports"
	}
	return &LocalStorage{baseDir: baseDir}
}

// Save writes data to filename and returns the path written. Relative names
// resolve under the base dir; absolute names are kept.
func (s *LocalStorage) Save(filename string, data []byte) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("export file name required")
	}
	path := s.Path(filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// Path resolves filename against the base dir.
func (s *LocalStorage) Path(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(s.baseDir, filename)
}
