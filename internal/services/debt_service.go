package services

import (
	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// debtService handles debt and repayment business logic.
type debtService struct {
	store *store.Store
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(s *store.Store) DebtServicer {
	return &debtService{store: s}
}

// CreateDebt creates a new debt record.
func (s *debtService) CreateDebt(amount float64, debtType models.DebtType, date, dueDate int64, personName string, interest float64, description string) (*models.Debt, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if personName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "person name is required")
	}

	debt := models.NewDebt(models.Debt{
		Amount:      amount,
		Type:        debtType,
		Date:        date,
		DueDate:     dueDate,
		PersonName:  personName,
		Interest:    interest,
		Description: description,
	})
	if err := s.store.Debts.Add(debt); err != nil {
		return nil, err
	}
	return &debt, nil
}

// GetDebts returns all debts in stored order.
func (s *debtService) GetDebts() []models.Debt {
	return s.store.Debts.GetAll()
}

// GetDebtByID returns a debt by ID.
func (s *debtService) GetDebtByID(id string) (*models.Debt, error) {
	debt, ok := s.store.Debts.GetByID(id)
	if !ok {
		return nil, apperrors.ErrDebtNotFound
	}
	return &debt, nil
}

// UpdateDebt updates the provided fields of an existing debt. Changing the
// amount re-derives the status against the existing repayments.
func (s *debtService) UpdateDebt(id string, amount *float64, debtType *models.DebtType, date, dueDate *int64, personName, description *string, interest *float64) (*models.Debt, error) {
	if amount != nil && *amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if personName != nil && *personName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "person name is required")
	}

	repaid := s.totalRepaid(id)
	updated, found, err := s.store.Debts.Update(id, func(d *models.Debt) {
		if amount != nil {
			d.Amount = *amount
			d.Status = deriveDebtStatus(*amount, repaid)
		}
		if debtType != nil {
			d.Type = *debtType
		}
		if date != nil {
			d.Date = *date
		}
		if dueDate != nil {
			d.DueDate = *dueDate
		}
		if personName != nil {
			d.PersonName = *personName
		}
		if description != nil {
			d.Description = *description
		}
		if interest != nil {
			d.Interest = *interest
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrDebtNotFound
	}
	return &updated, nil
}

// DeleteDebt removes a debt. Its repayments are left in place with dangling
// debt IDs.
func (s *debtService) DeleteDebt(id string) error {
	if _, ok := s.store.Debts.GetByID(id); !ok {
		return apperrors.ErrDebtNotFound
	}
	return s.store.Debts.Delete(id)
}

// MarkDebtPaid forces a debt's status to paid regardless of how much has
// actually been repaid.
func (s *debtService) MarkDebtPaid(id string) (*models.Debt, error) {
	updated, found, err := s.store.Debts.Update(id, func(d *models.Debt) {
		d.Status = models.DebtStatusPaid
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrDebtNotFound
	}
	return &updated, nil
}

// AddRepayment records a repayment against a debt and re-derives the debt's
// status from the new repayment total.
func (s *debtService) AddRepayment(debtID string, amount float64, date int64, note string) (*models.Repayment, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	debt, ok := s.store.Debts.GetByID(debtID)
	if !ok {
		return nil, apperrors.ErrDebtNotFound
	}

	repayment := models.NewRepayment(models.Repayment{
		DebtID: debtID,
		Amount: amount,
		Date:   date,
		Note:   note,
	})
	if err := s.store.Repayments.Add(repayment); err != nil {
		return nil, err
	}

	status := deriveDebtStatus(debt.Amount, s.totalRepaid(debtID))
	if _, _, err := s.store.Debts.Update(debtID, func(d *models.Debt) {
		d.Status = status
	}); err != nil {
		return nil, err
	}
	return &repayment, nil
}

// GetRepayments returns the repayments recorded against one debt.
func (s *debtService) GetRepayments(debtID string) []models.Repayment {
	all := s.store.Repayments.GetAll()
	matched := make([]models.Repayment, 0, len(all))
	for _, r := range all {
		if r.DebtID == debtID {
			matched = append(matched, r)
		}
	}
	return matched
}

// DeleteRepayment removes a repayment and re-derives its debt's status. The
// debt may already be gone; the repayment is still removed.
func (s *debtService) DeleteRepayment(id string) error {
	repayment, ok := s.store.Repayments.GetByID(id)
	if !ok {
		return apperrors.ErrRepaymentNotFound
	}
	if err := s.store.Repayments.Delete(id); err != nil {
		return err
	}

	debt, ok := s.store.Debts.GetByID(repayment.DebtID)
	if !ok {
		return nil
	}
	status := deriveDebtStatus(debt.Amount, s.totalRepaid(debt.ID))
	_, _, err := s.store.Debts.Update(debt.ID, func(d *models.Debt) {
		d.Status = status
	})
	return err
}

func (s *debtService) totalRepaid(debtID string) float64 {
	var total float64
	for _, r := range s.store.Repayments.GetAll() {
		if r.DebtID == debtID {
			total += r.Amount
		}
	}
	return total
}

// deriveDebtStatus maps the repaid total against the owed amount.
func deriveDebtStatus(amount, repaid float64) models.DebtStatus {
	switch {
	case repaid >= amount:
		return models.DebtStatusPaid
	case repaid > 0:
		return models.DebtStatusPartiallyPaid
	default:
		return models.DebtStatusActive
	}
}
