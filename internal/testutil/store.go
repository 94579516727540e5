// Package testutil provides shared helpers for tests: store setup, record
// fixtures, and assertions.
package testutil

import (
	"testing"

	"pocketledger/internal/logger"
	"pocketledger/internal/store"
)

func init() {
	logger.Init("test")
}

// NewTestStore creates a Store over an unlimited in-memory backend.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryBackend(0))
}

// NewQuotaStore creates a Store over an in-memory backend with the given
// quota in bytes, for exercising quota failures.
func NewQuotaStore(t *testing.T, quota int64) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryBackend(quota))
}
