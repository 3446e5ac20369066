// ABOUTME: File-backed Store holding a flat JSON object of key/value pairs
// ABOUTME: Writes go to a temp file in the same directory and are renamed into place

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ Store = (*File)(nil)

// File is a Store persisted as a JSON object on disk.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a File store at path. The file and its parent directory
// are created on the first Set.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (s *File) Path() string { return s.path }

func (s *File) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.readLocked()
	if err != nil {
		return "", false, err
	}
	v, ok := rows[key]
	return v, ok, nil
}

func (s *File) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.readLocked()
	if err != nil {
		return err
	}
	rows[key] = value
	return s.writeLocked(rows)
}

func (s *File) readLocked() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	rows := map[string]string{}
	if len(data) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return rows, nil
}

func (s *File) writeLocked(rows map[string]string) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".themeswitch-state-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
