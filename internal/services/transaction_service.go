package services

import (
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/insights"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store *store.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s *store.Store) TransactionServicer {
	return &transactionService{store: s}
}

// CreateTransaction creates a new transaction. Amount must be positive and a
// category must be selected; the model layer itself would accept anything.
func (s *transactionService) CreateTransaction(
	amount float64,
	txType models.TransactionType,
	categoryID, subcategoryID, description, notes string,
	tags []string,
	date int64,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if categoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	transaction := models.NewTransaction(models.Transaction{
		Amount:        amount,
		Type:          txType,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Description:   description,
		Notes:         notes,
		Tags:          tags,
		Date:          date,
	})
	if err := s.store.Transactions.Add(transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// GetTransactions returns a filtered, paginated page of transactions.
func (s *transactionService) GetTransactions(filter TransactionFilter, page pagination.PageRequest) pagination.PageResponse[models.Transaction] {
	transactions := s.store.Transactions.GetAll()

	if filter.Range != "" && filter.Range != insights.TimeRangeAll {
		transactions = insights.FilterByRange(transactions, filter.Range, time.Now())
	}
	transactions = insights.FilterByCategory(transactions, filter.CategoryID)
	if filter.Type != "" {
		kept := transactions[:0]
		for _, t := range transactions {
			if t.Type == filter.Type {
				kept = append(kept, t)
			}
		}
		transactions = kept
	}

	return pagination.Paginate(transactions, page)
}

// GetTransactionByID returns a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	transaction, ok := s.store.Transactions.GetByID(id)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &transaction, nil
}

// UpdateTransaction updates the provided fields of an existing transaction.
func (s *transactionService) UpdateTransaction(
	id string,
	amount *float64,
	txType *models.TransactionType,
	categoryID, subcategoryID, description, notes *string,
	tags []string,
	date *int64,
) (*models.Transaction, error) {
	if amount != nil && *amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	updated, found, err := s.store.Transactions.Update(id, func(t *models.Transaction) {
		if amount != nil {
			t.Amount = *amount
		}
		if txType != nil {
			t.Type = *txType
		}
		if categoryID != nil {
			t.CategoryID = *categoryID
		}
		if subcategoryID != nil {
			t.SubcategoryID = *subcategoryID
		}
		if description != nil {
			t.Description = *description
		}
		if notes != nil {
			t.Notes = *notes
		}
		if tags != nil {
			t.Tags = tags
		}
		if date != nil {
			t.Date = *date
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &updated, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(id string) error {
	if _, ok := s.store.Transactions.GetByID(id); !ok {
		return apperrors.ErrTransactionNotFound
	}
	return s.store.Transactions.Delete(id)
}
