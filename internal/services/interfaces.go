// Package services implements the business operations of Pocketledger on
// top of the persistence store and the aggregation engine.
package services

import (
	"context"

	"pocketledger/internal/insights"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/store"
)

// CategoryServicer manages categories and their embedded subcategories.
type CategoryServicer interface {
	CreateCategory(name, color, icon string, incomeOnly, expenseOnly bool) (*models.Category, error)
	GetCategories() []models.Category
	GetCategoryByID(id string) (*models.Category, error)
	UpdateCategory(id string, name, color, icon *string, incomeOnly, expenseOnly *bool) (*models.Category, error)
	DeleteCategory(id string) error
	AddSubcategory(categoryID, name, color string) (*models.Subcategory, error)
	UpdateSubcategory(categoryID, subcategoryID string, name, color *string) (*models.Subcategory, error)
	DeleteSubcategory(categoryID, subcategoryID string) error
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Range      insights.TimeRange
	CategoryID string
	Type       models.TransactionType
}

// TransactionServicer manages income and expense entries.
type TransactionServicer interface {
	CreateTransaction(amount float64, txType models.TransactionType, categoryID, subcategoryID, description, notes string, tags []string, date int64) (*models.Transaction, error)
	GetTransactions(filter TransactionFilter, page pagination.PageRequest) pagination.PageResponse[models.Transaction]
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, amount *float64, txType *models.TransactionType, categoryID, subcategoryID, description, notes *string, tags []string, date *int64) (*models.Transaction, error)
	DeleteTransaction(id string) error
}

// BudgetServicer manages budgets and their progress.
type BudgetServicer interface {
	CreateBudget(categoryID, subcategoryID string, amount float64, period models.BudgetPeriod, startDate int64, endDate *int64) (*models.Budget, error)
	GetBudgets() []models.Budget
	GetBudgetByID(id string) (*models.Budget, error)
	UpdateBudget(id string, amount *float64, period *models.BudgetPeriod, startDate, endDate *int64) (*models.Budget, error)
	DeleteBudget(id string) error
	GetBudgetProgress(id string) (*insights.BudgetProgress, error)
	GetAllBudgetProgress() []insights.BudgetProgress
}

// DebtServicer manages debts and their repayments. Debt status is derived
// from repayments whenever they change.
type DebtServicer interface {
	CreateDebt(amount float64, debtType models.DebtType, date, dueDate int64, personName string, interest float64, description string) (*models.Debt, error)
	GetDebts() []models.Debt
	GetDebtByID(id string) (*models.Debt, error)
	UpdateDebt(id string, amount *float64, debtType *models.DebtType, date, dueDate *int64, personName, description *string, interest *float64) (*models.Debt, error)
	DeleteDebt(id string) error
	MarkDebtPaid(id string) (*models.Debt, error)
	AddRepayment(debtID string, amount float64, date int64, note string) (*models.Repayment, error)
	GetRepayments(debtID string) []models.Repayment
	DeleteRepayment(id string) error
}

// NotificationServicer manages notifications and runs detection sweeps.
type NotificationServicer interface {
	GetNotifications(unreadOnly bool) []models.Notification
	MarkRead(id string) (*models.Notification, error)
	MarkAllRead() error
	DeleteNotification(id string) error
	RunChecks() ([]models.Notification, error)
}

// InsightServicer computes view-ready aggregations over the stored data.
type InsightServicer interface {
	GetSummary(timeRange insights.TimeRange, categoryID string) Summary
	GetExpenseBreakdown(timeRange insights.TimeRange) []insights.CategorySlice
	GetMonthlySeries(timeRange insights.TimeRange) []insights.MonthlyPoint
	GetRunningBalance(timeRange insights.TimeRange) []insights.BalancePoint
	GetCategoryTrends(timeRange insights.TimeRange) insights.CategoryTrend
}

// SettingsServicer manages the settings singleton.
type SettingsServicer interface {
	GetSettings() models.Settings
	UpdateSettings(mutate func(*models.Settings)) (models.Settings, error)
}

// PortabilityServicer handles bulk export, import, and wiping of all data.
type PortabilityServicer interface {
	Export() ExportDocument
	Import(doc ImportDocument) error
	ClearAll() error
	StorageInfo() (store.Info, error)
}

// SyncServicer pushes full local snapshots to the optional remote store.
type SyncServicer interface {
	SyncAll(ctx context.Context) ([]SyncResult, error)
	PingRemote(ctx context.Context) error
}
