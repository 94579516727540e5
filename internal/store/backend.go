// Package store provides durable, synchronous, whole-collection storage for
// each record kind, namespaced by a fixed string key per kind, on top of a
// quota-limited key-value string backend.
//
// Writers always replace the full serialized collection under its key, so a
// reader never observes a partially written collection. Concurrent writers
// are not coordinated beyond that: last write wins.
package store

// Storage keys, one per collection, plus the settings singleton. These are
// part of the on-disk format and must not change.
const (
	KeyCategories    = "budget-tracker-categories"
	KeyTransactions  = "budget-tracker-transactions"
	KeyBudgets       = "budget-tracker-budgets"
	KeyDebts         = "budget-tracker-debts"
	KeyRepayments    = "budget-tracker-repayments"
	KeyNotifications = "budget-tracker-notifications"
	KeySettings      = "budget-tracker-settings"
)

// CollectionKeys maps public collection names (as used by the remote mirror
// contract and the export document) to storage keys.
var CollectionKeys = map[string]string{
	"categories":    KeyCategories,
	"transactions":  KeyTransactions,
	"budgets":       KeyBudgets,
	"debts":         KeyDebts,
	"repayments":    KeyRepayments,
	"notifications": KeyNotifications,
}

// allKeys lists every storage key, for ClearAll and usage accounting.
var allKeys = []string{
	KeyCategories,
	KeyTransactions,
	KeyBudgets,
	KeyDebts,
	KeyRepayments,
	KeyNotifications,
	KeySettings,
}

// Backend is a synchronous string key-value store with a finite quota.
// Set must fail with errors.ErrStorageQuotaExceeded when the write would
// push total stored bytes past the quota.
type Backend interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes the key entirely. Deleting an absent key is not an error.
	Delete(key string) error
	// UsedBytes reports the total size of all stored values.
	UsedBytes() (int64, error)
	// Quota reports the backend's capacity in bytes. Zero means unlimited.
	Quota() int64
}
