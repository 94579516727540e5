package store

import (
	"encoding/json"
	"time"

	"pocketledger/internal/logger"
)

// Record is implemented by every stored entity kind.
type Record interface {
	RecordID() string
}

// Collection provides whole-collection storage for one record kind under a
// fixed namespaced key. Reads that fail to parse degrade to an empty
// collection and are logged, never surfaced; quota failures on write are
// returned to the caller.
type Collection[T Record] struct {
	backend Backend
	key     string
}

// NewCollection creates a collection store for the given key.
func NewCollection[T Record](backend Backend, key string) *Collection[T] {
	return &Collection[T]{backend: backend, key: key}
}

// Key returns the namespaced storage key.
func (c *Collection[T]) Key() string { return c.key }

// GetAll returns the full collection in stored order. An absent key or a
// value that fails to parse yields an empty collection.
func (c *Collection[T]) GetAll() []T {
	raw, ok, err := c.backend.Get(c.key)
	if err != nil {
		logger.Get().Errorw("failed to read collection", "key", c.key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Get().Errorw("failed to parse stored collection, treating as empty",
			"key", c.key, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// GetByID returns the record with the given ID, if present.
func (c *Collection[T]) GetByID(id string) (T, bool) {
	for _, item := range c.GetAll() {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Save serializes items and overwrites the entire collection.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.backend.Set(c.key, string(raw))
}

// Add appends item to the collection.
func (c *Collection[T]) Add(item T) error {
	return c.Save(append(c.GetAll(), item))
}

// Update applies mutate to the record with the given ID and restamps its
// UpdatedAt. It reports whether the record was found; a missing record is
// not an error and writes nothing.
func (c *Collection[T]) Update(id string, mutate func(*T)) (T, bool, error) {
	items := c.GetAll()
	for i := range items {
		if items[i].RecordID() != id {
			continue
		}
		mutate(&items[i])
		if stamped, ok := any(&items[i]).(interface{ SetUpdatedAt(int64) }); ok {
			stamped.SetUpdatedAt(time.Now().UnixMilli())
		}
		return items[i], true, c.Save(items)
	}
	var zero T
	return zero, false, nil
}

// Delete filters the record out of the collection and writes back.
func (c *Collection[T]) Delete(id string) error {
	items := c.GetAll()
	kept := items[:0]
	for _, item := range items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	return c.Save(kept)
}

// Clear removes the namespaced key entirely. Clearing twice is the same as
// clearing once.
func (c *Collection[T]) Clear() error {
	return c.backend.Delete(c.key)
}
