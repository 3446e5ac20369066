// ABOUTME: Key-value persistence for the active theme selection
// ABOUTME: Store interface plus an in-process Memory implementation

package store

import (
	"errors"
	"sync"
)

// ErrEmptyKey is returned when a caller passes an empty key.
var ErrEmptyKey = errors.New("store: empty key")

// Store persists string values under string keys.
// Get reports found=false for a missing key; err is reserved for backend
// failures.
type Store interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

var _ Store = (*Memory)(nil)

// Memory is a goroutine-safe in-process Store.
type Memory struct {
	mu   sync.RWMutex
	rows map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{rows: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.rows[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[key] = value
	return nil
}
