package services

import (
	"time"

	"pocketledger/internal/insights"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// Summary is the headline totals for a time window.
type Summary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

// insightService runs the pure aggregation engine over stored data.
type insightService struct {
	store *store.Store
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(s *store.Store) InsightServicer {
	return &insightService{store: s}
}

func (s *insightService) windowed(timeRange insights.TimeRange) []models.Transaction {
	return insights.FilterByRange(s.store.Transactions.GetAll(), timeRange, time.Now())
}

// GetSummary totals income and expenses within the window, optionally for a
// single category.
func (s *insightService) GetSummary(timeRange insights.TimeRange, categoryID string) Summary {
	transactions := insights.FilterByCategory(s.windowed(timeRange), categoryID)

	summary := Summary{TransactionCount: len(transactions)}
	for _, t := range transactions {
		if t.Type == models.TransactionTypeIncome {
			summary.TotalIncome += t.Amount
		} else {
			summary.TotalExpenses += t.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	return summary
}

// GetExpenseBreakdown groups windowed expenses by category.
func (s *insightService) GetExpenseBreakdown(timeRange insights.TimeRange) []insights.CategorySlice {
	return insights.ExpenseBreakdown(s.windowed(timeRange), s.store.Categories.GetAll())
}

// GetMonthlySeries buckets windowed transactions by calendar month.
func (s *insightService) GetMonthlySeries(timeRange insights.TimeRange) []insights.MonthlyPoint {
	return insights.MonthlySeries(s.windowed(timeRange))
}

// GetRunningBalance emits the per-transaction running balance for the window.
func (s *insightService) GetRunningBalance(timeRange insights.TimeRange) []insights.BalancePoint {
	return insights.RunningBalance(s.windowed(timeRange))
}

// GetCategoryTrends pivots windowed expenses by month and category.
func (s *insightService) GetCategoryTrends(timeRange insights.TimeRange) insights.CategoryTrend {
	return insights.CategoryTrends(s.windowed(timeRange), s.store.Categories.GetAll())
}
