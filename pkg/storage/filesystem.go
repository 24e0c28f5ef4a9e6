package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSystemWriter implements the Writer interface on a local directory tree
type FileSystemWriter struct {
	rootDir string
}

// NewFileSystemWriter creates a new filesystem-backed writer rooted at rootDir
func NewFileSystemWriter(rootDir string) (*FileSystemWriter, error) {
	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output root: %w", err)
	}
	return &FileSystemWriter{rootDir: rootDir}, nil
}

// WriteFile implements Writer.WriteFile
func (w *FileSystemWriter) WriteFile(relPath string, content string) error {
	fullPath := filepath.Join(w.rootDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}

	return nil
}
