package models

import "time"

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodDaily   BudgetPeriod = "daily"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending plan scoped to a category and optionally one
// of its subcategories. There is no enforcement that StartDate <= EndDate.
type Budget struct {
	Base
	CategoryID    string       `json:"categoryId"`
	SubcategoryID string       `json:"subcategoryId,omitempty"`
	Amount        float64      `json:"amount"`
	Period        BudgetPeriod `json:"period"`
	StartDate     int64        `json:"startDate"`
	EndDate       *int64       `json:"endDate,omitempty"`
}

// NewBudget returns a complete Budget. Defaults: period monthly, start now.
func NewBudget(b Budget) Budget {
	b.Base = newBase(b.ID)
	if b.Period == "" {
		b.Period = BudgetPeriodMonthly
	}
	if b.StartDate == 0 {
		b.StartDate = time.Now().UnixMilli()
	}
	return b
}
