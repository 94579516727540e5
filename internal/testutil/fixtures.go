package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, s *store.Store) models.Category {
	t.Helper()

	category := models.NewCategory(models.Category{
		Name:  fmt.Sprintf("Test Category %d", nextID()),
		Color: "#FF5722",
	})
	if err := s.Categories.Add(category); err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given type and amount,
// dated now.
func CreateTestTransaction(t *testing.T, s *store.Store, txType models.TransactionType, categoryID string, amount float64) models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, s, txType, categoryID, amount, time.Now().UnixMilli())
}

// CreateTestTransactionAt creates a transaction with an explicit date.
func CreateTestTransactionAt(t *testing.T, s *store.Store, txType models.TransactionType, categoryID string, amount float64, date int64) models.Transaction {
	t.Helper()

	transaction := models.NewTransaction(models.Transaction{
		Amount:      amount,
		Type:        txType,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        date,
	})
	if err := s.Transactions.Add(transaction); err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestBudget creates a monthly budget for the given category.
func CreateTestBudget(t *testing.T, s *store.Store, categoryID string, amount float64) models.Budget {
	t.Helper()

	budget := models.NewBudget(models.Budget{
		CategoryID: categoryID,
		Amount:     amount,
		Period:     models.BudgetPeriodMonthly,
	})
	if err := s.Budgets.Add(budget); err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestDebt creates a borrowed debt with a unique person name.
func CreateTestDebt(t *testing.T, s *store.Store, amount float64) models.Debt {
	t.Helper()

	debt := models.NewDebt(models.Debt{
		Amount:     amount,
		Type:       models.DebtTypeBorrowed,
		PersonName: fmt.Sprintf("Test Person %d", nextID()),
	})
	if err := s.Debts.Add(debt); err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestNotification creates an unread notification.
func CreateTestNotification(t *testing.T, s *store.Store, kind models.NotificationType, relatedID string) models.Notification {
	t.Helper()

	notification := models.NewNotification(models.Notification{
		Type:      kind,
		Message:   fmt.Sprintf("Test Notification %d", nextID()),
		RelatedID: relatedID,
	})
	if err := s.Notifications.Add(notification); err != nil {
		t.Fatalf("failed to create test notification: %v", err)
	}
	return notification
}
