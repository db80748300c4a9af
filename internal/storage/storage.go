// Package storage reads and writes documents as plain text files.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when the file to load does not exist
var ErrNotFound = errors.New("file not found")

// FileStore loads and saves line lists on a file system
type FileStore struct {
	fs afero.Fs
}

// NewFileStore creates a store over fsys
func NewFileStore(fsys afero.Fs) *FileStore {
	return &FileStore{fs: fsys}
}

// NewOsFileStore creates a store over the OS file system
func NewOsFileStore() *FileStore {
	return NewFileStore(afero.NewOsFs())
}

// Load reads path and splits it into lines. Line endings may be \n or \r\n,
// and a final newline does not produce an extra empty line.
func (s *FileStore) Load(path string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := SplitLines(string(data))
	log.Printf("Loaded %d lines from %s", len(lines), path)
	return lines, nil
}

// Save writes lines to path joined by \n and returns the number of bytes written
func (s *FileStore) Save(path string, lines []string) (int, error) {
	data := JoinLines(lines)
	if err := afero.WriteFile(s.fs, path, []byte(data), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Printf("Wrote %d bytes to %s", len(data), path)
	return len(data), nil
}

// SplitLines breaks text into lines
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// JoinLines is the inverse of SplitLines for text without a final newline
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
