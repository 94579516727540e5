// Package insights computes view-ready numbers from the full in-memory
// transaction list. Every function is pure and deterministic: nothing here
// reads or writes storage, and dangling category references resolve to a
// sentinel label instead of failing.
package insights

import (
	"sort"
	"time"

	"pocketledger/internal/models"
)

// UnknownCategoryName labels amounts whose category no longer exists.
const UnknownCategoryName = "Unknown"

// unknownCategoryColor is the display color for dangling references.
const unknownCategoryColor = "#ccc"

// ResolveCategory looks up a category by ID, falling back to the sentinel
// name and default color for dangling references. This is the single
// fallback path for category display resolution.
func ResolveCategory(categories []models.Category, id string) (name, color string) {
	for _, c := range categories {
		if c.ID == id {
			return c.Name, c.Color
		}
	}
	return UnknownCategoryName, unknownCategoryColor
}

// BudgetProgress describes spend against one budget.
type BudgetProgress struct {
	BudgetID   string  `json:"budgetId"`
	Budgeted   float64 `json:"budgeted"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"` // clamped to 100 for display
	OverBudget bool    `json:"overBudget"`
	Invalid    bool    `json:"invalid"` // budget amount <= 0
}

// ComputeBudgetProgress sums expense transactions in the budget's category
// (and subcategory, when the budget names one) and derives the progress
// percentage. The percentage is clamped to 100; the over-budget state is
// detected from the unclamped spent amount. A budget amount of zero or less
// yields 0% with the Invalid flag set rather than dividing by zero.
func ComputeBudgetProgress(budget models.Budget, transactions []models.Transaction) BudgetProgress {
	var spent float64
	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if t.CategoryID != budget.CategoryID {
			continue
		}
		if budget.SubcategoryID != "" && t.SubcategoryID != budget.SubcategoryID {
			continue
		}
		spent += t.Amount
	}

	progress := BudgetProgress{
		BudgetID:  budget.ID,
		Budgeted:  budget.Amount,
		Spent:     spent,
		Remaining: budget.Amount - spent,
	}

	if budget.Amount <= 0 {
		progress.Invalid = true
		return progress
	}

	progress.OverBudget = spent > budget.Amount
	progress.Percentage = spent / budget.Amount * 100
	if progress.Percentage > 100 {
		progress.Percentage = 100
	}
	return progress
}

// CategorySlice is one category's share of total expenses.
type CategorySlice struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
}

// ExpenseBreakdown groups expense transactions by category, resolves each
// group's display name and color, and sorts descending by summed amount.
// Transactions with no category at all are skipped; dangling references are
// kept under the sentinel name.
func ExpenseBreakdown(transactions []models.Transaction, categories []models.Category) []CategorySlice {
	totals := make(map[string]float64)
	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense || t.CategoryID == "" {
			continue
		}
		totals[t.CategoryID] += t.Amount
	}

	slices := make([]CategorySlice, 0, len(totals))
	for id, amount := range totals {
		name, color := ResolveCategory(categories, id)
		slices = append(slices, CategorySlice{CategoryID: id, Name: name, Color: color, Amount: amount})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount != slices[j].Amount {
			return slices[i].Amount > slices[j].Amount
		}
		return slices[i].Name < slices[j].Name
	})
	return slices
}

// MonthlyPoint is one calendar month's income and expense totals.
type MonthlyPoint struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Label    string     `json:"label"`
	Income   float64    `json:"income"`
	Expenses float64    `json:"expenses"`
}

type yearMonth struct {
	year  int
	month time.Month
}

func monthOf(ms int64) (yearMonth, string) {
	t := time.UnixMilli(ms).UTC()
	return yearMonth{t.Year(), t.Month()}, t.Format("Jan 06")
}

// MonthlySeries groups transactions by calendar year-month and accumulates
// income and expense sums per month, sorted chronologically. The sort
// compares actual year and month index, never the label: "Jan" sorts before
// "Dec" lexically but December of one year precedes January of the next.
func MonthlySeries(transactions []models.Transaction) []MonthlyPoint {
	buckets := make(map[yearMonth]*MonthlyPoint)
	for _, t := range transactions {
		key, label := monthOf(t.Date)
		point, ok := buckets[key]
		if !ok {
			point = &MonthlyPoint{Year: key.year, Month: key.month, Label: label}
			buckets[key] = point
		}
		if t.Type == models.TransactionTypeIncome {
			point.Income += t.Amount
		} else {
			point.Expenses += t.Amount
		}
	}

	series := make([]MonthlyPoint, 0, len(buckets))
	for _, point := range buckets {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Month < series[j].Month
	})
	return series
}

// BalancePoint is the running balance after one transaction.
type BalancePoint struct {
	Date    int64   `json:"date"`
	Balance float64 `json:"balance"`
}

// RunningBalance sorts transactions ascending by date and emits one point
// per transaction: income adds to the running total, expense subtracts.
func RunningBalance(transactions []models.Transaction) []BalancePoint {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	points := make([]BalancePoint, 0, len(sorted))
	var balance float64
	for _, t := range sorted {
		if t.Type == models.TransactionTypeIncome {
			balance += t.Amount
		} else {
			balance -= t.Amount
		}
		points = append(points, BalancePoint{Date: t.Date, Balance: balance})
	}
	return points
}

// CategoryRef identifies one category column in a trend pivot.
type CategoryRef struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Color      string `json:"color"`
}

// TrendRow is one month of per-category expense totals. Categories with no
// spend that month are absent from Amounts rather than explicit zeros.
type TrendRow struct {
	Year    int                `json:"year"`
	Month   time.Month         `json:"month"`
	Label   string             `json:"label"`
	Amounts map[string]float64 `json:"amounts"`
}

// CategoryTrend is the month-by-category expense pivot.
type CategoryTrend struct {
	Rows       []TrendRow    `json:"rows"`
	Categories []CategoryRef `json:"categories"`
}

// CategoryTrends groups expense transactions by (year-month, category) and
// pivots into one row per month with one column per category seen in the
// window. Rows are sorted chronologically, columns by resolved name.
func CategoryTrends(transactions []models.Transaction, categories []models.Category) CategoryTrend {
	rows := make(map[yearMonth]*TrendRow)
	seen := make(map[string]bool)

	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense || t.CategoryID == "" {
			continue
		}
		key, label := monthOf(t.Date)
		row, ok := rows[key]
		if !ok {
			row = &TrendRow{Year: key.year, Month: key.month, Label: label, Amounts: make(map[string]float64)}
			rows[key] = row
		}
		row.Amounts[t.CategoryID] += t.Amount
		seen[t.CategoryID] = true
	}

	trend := CategoryTrend{
		Rows:       make([]TrendRow, 0, len(rows)),
		Categories: make([]CategoryRef, 0, len(seen)),
	}
	for _, row := range rows {
		trend.Rows = append(trend.Rows, *row)
	}
	sort.Slice(trend.Rows, func(i, j int) bool {
		if trend.Rows[i].Year != trend.Rows[j].Year {
			return trend.Rows[i].Year < trend.Rows[j].Year
		}
		return trend.Rows[i].Month < trend.Rows[j].Month
	})

	for id := range seen {
		name, color := ResolveCategory(categories, id)
		trend.Categories = append(trend.Categories, CategoryRef{CategoryID: id, Name: name, Color: color})
	}
	sort.Slice(trend.Categories, func(i, j int) bool {
		if trend.Categories[i].Name != trend.Categories[j].Name {
			return trend.Categories[i].Name < trend.Categories[j].Name
		}
		return trend.Categories[i].CategoryID < trend.Categories[j].CategoryID
	})
	return trend
}
