package store

import (
	"sync"

	apperrors "pocketledger/internal/errors"
)

// MemoryBackend is an in-process Backend. It is the default for tests and
// for running without a data file.
type MemoryBackend struct {
	mu    sync.RWMutex
	data  map[string]string
	quota int64
}

// NewMemoryBackend creates a MemoryBackend with the given quota in bytes.
// A quota of zero disables the limit.
func NewMemoryBackend(quota int64) *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string), quota: quota}
}

// Get returns the stored value and whether the key was present.
func (m *MemoryBackend) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key, enforcing the quota over total stored bytes.
func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quota > 0 {
		used := m.usedLocked() - int64(len(m.data[key])) + int64(len(value))
		if used > m.quota {
			return apperrors.ErrStorageQuotaExceeded
		}
	}

	m.data[key] = value
	return nil
}

// Delete removes the key entirely.
func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// UsedBytes reports the total size of all stored values.
func (m *MemoryBackend) UsedBytes() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usedLocked(), nil
}

// Quota reports the backend's capacity in bytes.
func (m *MemoryBackend) Quota() int64 { return m.quota }

func (m *MemoryBackend) usedLocked() int64 {
	var total int64
	for _, v := range m.data {
		total += int64(len(v))
	}
	return total
}
