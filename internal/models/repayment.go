package models

import "time"

// Repayment records a partial or full payment against a debt. The sum of a
// debt's repayments is not capped at the debt amount.
type Repayment struct {
	Base
	DebtID string  `json:"debtId"`
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
	Note   string  `json:"note,omitempty"`
}

// NewRepayment returns a complete Repayment dated now by default.
func NewRepayment(r Repayment) Repayment {
	r.Base = newBase(r.ID)
	if r.Date == 0 {
		r.Date = time.Now().UnixMilli()
	}
	return r
}
