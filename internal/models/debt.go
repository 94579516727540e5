package models

import "time"

// DebtType represents the direction of a debt.
type DebtType string

const (
	DebtTypeBorrowed DebtType = "borrowed"
	DebtTypeLent     DebtType = "lent"
)

// DebtStatus represents the repayment state of a debt. It is derived from
// the sum of associated repayments whenever repayments change, and can also
// be forced to paid directly.
type DebtStatus string

const (
	DebtStatusActive        DebtStatus = "active"
	DebtStatusPartiallyPaid DebtStatus = "partially_paid"
	DebtStatusPaid          DebtStatus = "paid"
)

// Debt represents money borrowed from or lent to a person. Repayments
// reference it by ID and survive its deletion.
type Debt struct {
	Base
	Amount      float64    `json:"amount"`
	Type        DebtType   `json:"type"`
	Date        int64      `json:"date"`
	DueDate     int64      `json:"dueDate"`
	PersonName  string     `json:"personName"`
	Interest    float64    `json:"interest,omitempty"`
	Description string     `json:"description"`
	Status      DebtStatus `json:"status"`
}

// NewDebt returns a complete Debt. Defaults: borrowed, dated now, due in
// 30 days, status active.
func NewDebt(d Debt) Debt {
	d.Base = newBase(d.ID)
	now := time.Now()
	if d.Type == "" {
		d.Type = DebtTypeBorrowed
	}
	if d.Date == 0 {
		d.Date = now.UnixMilli()
	}
	if d.DueDate == 0 {
		d.DueDate = now.AddDate(0, 0, 30).UnixMilli()
	}
	if d.Status == "" {
		d.Status = DebtStatusActive
	}
	return d
}
