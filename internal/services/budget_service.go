package services

import (
	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/insights"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	store *store.Store
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(s *store.Store) BudgetServicer {
	return &budgetService{store: s}
}

// CreateBudget creates a new budget for a category. The category must exist
// at creation time; it may be deleted later and the budget will keep its
// dangling reference.
func (s *budgetService) CreateBudget(categoryID, subcategoryID string, amount float64, period models.BudgetPeriod, startDate int64, endDate *int64) (*models.Budget, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if _, ok := s.store.Categories.GetByID(categoryID); !ok {
		return nil, apperrors.ErrCategoryNotFound
	}

	budget := models.NewBudget(models.Budget{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Amount:        amount,
		Period:        period,
		StartDate:     startDate,
		EndDate:       endDate,
	})
	if err := s.store.Budgets.Add(budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// GetBudgets returns all budgets in stored order.
func (s *budgetService) GetBudgets() []models.Budget {
	return s.store.Budgets.GetAll()
}

// GetBudgetByID returns a budget by ID.
func (s *budgetService) GetBudgetByID(id string) (*models.Budget, error) {
	budget, ok := s.store.Budgets.GetByID(id)
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}
	return &budget, nil
}

// UpdateBudget updates the provided fields of an existing budget.
func (s *budgetService) UpdateBudget(id string, amount *float64, period *models.BudgetPeriod, startDate, endDate *int64) (*models.Budget, error) {
	if amount != nil && *amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	updated, found, err := s.store.Budgets.Update(id, func(b *models.Budget) {
		if amount != nil {
			b.Amount = *amount
		}
		if period != nil {
			b.Period = *period
		}
		if startDate != nil {
			b.StartDate = *startDate
		}
		if endDate != nil {
			b.EndDate = endDate
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrBudgetNotFound
	}
	return &updated, nil
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(id string) error {
	if _, ok := s.store.Budgets.GetByID(id); !ok {
		return apperrors.ErrBudgetNotFound
	}
	return s.store.Budgets.Delete(id)
}

// GetBudgetProgress calculates spending against one budget from the full
// transaction list.
func (s *budgetService) GetBudgetProgress(id string) (*insights.BudgetProgress, error) {
	budget, ok := s.store.Budgets.GetByID(id)
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}

	progress := insights.ComputeBudgetProgress(budget, s.store.Transactions.GetAll())
	return &progress, nil
}

// GetAllBudgetProgress calculates progress for every budget.
func (s *budgetService) GetAllBudgetProgress() []insights.BudgetProgress {
	budgets := s.store.Budgets.GetAll()
	transactions := s.store.Transactions.GetAll()

	progress := make([]insights.BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		progress = append(progress, insights.ComputeBudgetProgress(budget, transactions))
	}
	return progress
}
