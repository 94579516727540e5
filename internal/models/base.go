// Package models defines the canonical shapes and default-filling
// constructors for every record kind the store persists. Constructors never
// validate business rules; an empty name or zero amount is legal here and
// is the caller's problem to reject.
//
// JSON field names are camelCase to stay wire-compatible with data exported
// by earlier releases.
package models

import (
	"time"

	"pocketledger/internal/uuid"
)

// Base contains the common fields for all stored records. Timestamps are
// integer epoch milliseconds.
type Base struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// RecordID returns the record's opaque unique identifier.
func (b Base) RecordID() string { return b.ID }

// SetUpdatedAt restamps the record's modification time.
func (b *Base) SetUpdatedAt(ms int64) { b.UpdatedAt = ms }

// newBase fills the common fields, generating a UUIDv7 unless an ID was
// supplied. Supplied IDs are kept so imports and merges stay idempotent.
func newBase(id string) Base {
	now := time.Now().UnixMilli()
	if id == "" {
		id = uuid.New()
	}
	return Base{ID: id, CreatedAt: now, UpdatedAt: now}
}
