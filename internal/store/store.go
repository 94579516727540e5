package store

import (
	"pocketledger/internal/models"
)

// Store bundles the per-kind collection stores and the settings singleton
// over one shared backend.
type Store struct {
	Backend Backend

	Categories    *Collection[models.Category]
	Transactions  *Collection[models.Transaction]
	Budgets       *Collection[models.Budget]
	Debts         *Collection[models.Debt]
	Repayments    *Collection[models.Repayment]
	Notifications *Collection[models.Notification]
	Settings      *SettingsStore
}

// New creates a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{
		Backend:       backend,
		Categories:    NewCollection[models.Category](backend, KeyCategories),
		Transactions:  NewCollection[models.Transaction](backend, KeyTransactions),
		Budgets:       NewCollection[models.Budget](backend, KeyBudgets),
		Debts:         NewCollection[models.Debt](backend, KeyDebts),
		Repayments:    NewCollection[models.Repayment](backend, KeyRepayments),
		Notifications: NewCollection[models.Notification](backend, KeyNotifications),
		Settings:      NewSettingsStore(backend),
	}
}

// ClearAll removes every namespaced key, settings included.
func (s *Store) ClearAll() error {
	for _, key := range allKeys {
		if err := s.Backend.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Info describes storage usage against the backend quota.
type Info struct {
	Used       int64   `json:"used"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Info reports current storage usage. With an unlimited backend the
// percentage is zero.
func (s *Store) Info() (Info, error) {
	used, err := s.Backend.UsedBytes()
	if err != nil {
		return Info{}, err
	}
	info := Info{Used: used, Total: s.Backend.Quota()}
	if info.Total > 0 {
		info.Percentage = float64(used) / float64(info.Total) * 100
	}
	return info, nil
}
