// Package uuid generates collision-resistant identifiers for stored records.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7. UUIDv7 is time-ordered, which keeps freshly
// created records roughly sorted by creation time when IDs are compared.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to random UUIDv4 if the monotonic clock source fails.
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
