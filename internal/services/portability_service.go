package services

import (
	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// ExportDocument is the full data snapshot handed to the user. Everything
// the store holds is included, settings and all.
type ExportDocument struct {
	Categories    []models.Category     `json:"categories"`
	Transactions  []models.Transaction  `json:"transactions"`
	Budgets       []models.Budget       `json:"budgets"`
	Debts         []models.Debt         `json:"debts"`
	Repayments    []models.Repayment    `json:"repayments"`
	Notifications []models.Notification `json:"notifications"`
	Settings      models.Settings       `json:"settings"`
}

// ImportDocument is a snapshot to restore. Categories, transactions, budgets
// and debts must all be present, even if empty; the rest are optional and
// left untouched when absent. Pointers distinguish a missing key from an
// empty list.
type ImportDocument struct {
	Categories    *[]models.Category     `json:"categories"`
	Transactions  *[]models.Transaction  `json:"transactions"`
	Budgets       *[]models.Budget       `json:"budgets"`
	Debts         *[]models.Debt         `json:"debts"`
	Repayments    *[]models.Repayment    `json:"repayments"`
	Notifications *[]models.Notification `json:"notifications"`
	Settings      *models.Settings       `json:"settings"`
}

// portabilityService handles bulk export, import, and wiping.
type portabilityService struct {
	store *store.Store
}

// NewPortabilityService creates a new PortabilityServicer.
func NewPortabilityService(s *store.Store) PortabilityServicer {
	return &portabilityService{store: s}
}

// Export snapshots every collection and the settings singleton.
func (s *portabilityService) Export() ExportDocument {
	return ExportDocument{
		Categories:    s.store.Categories.GetAll(),
		Transactions:  s.store.Transactions.GetAll(),
		Budgets:       s.store.Budgets.GetAll(),
		Debts:         s.store.Debts.GetAll(),
		Repayments:    s.store.Repayments.GetAll(),
		Notifications: s.store.Notifications.GetAll(),
		Settings:      s.store.Settings.Get(),
	}
}

// Import validates and restores a snapshot, replacing each collection it
// carries wholesale. Record IDs in the document are kept, so importing the
// same document twice yields the same state.
func (s *portabilityService) Import(doc ImportDocument) error {
	if doc.Categories == nil || doc.Transactions == nil || doc.Budgets == nil || doc.Debts == nil {
		return apperrors.ErrInvalidImport
	}

	if err := s.store.Categories.Save(*doc.Categories); err != nil {
		return err
	}
	if err := s.store.Transactions.Save(*doc.Transactions); err != nil {
		return err
	}
	if err := s.store.Budgets.Save(*doc.Budgets); err != nil {
		return err
	}
	if err := s.store.Debts.Save(*doc.Debts); err != nil {
		return err
	}
	if doc.Repayments != nil {
		if err := s.store.Repayments.Save(*doc.Repayments); err != nil {
			return err
		}
	}
	if doc.Notifications != nil {
		if err := s.store.Notifications.Save(*doc.Notifications); err != nil {
			return err
		}
	}
	if doc.Settings != nil {
		if err := s.store.Settings.Save(*doc.Settings); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll wipes every stored collection and the settings singleton.
func (s *portabilityService) ClearAll() error {
	return s.store.ClearAll()
}

// StorageInfo reports how much of the backend quota is in use.
func (s *portabilityService) StorageInfo() (store.Info, error) {
	return s.store.Info()
}
