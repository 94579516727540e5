package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry. Category and
// subcategory references are plain IDs; the referenced records may no longer
// exist, and readers must resolve them through a lookup-or-fallback accessor.
type Transaction struct {
	Base
	Amount        float64         `json:"amount"`
	Date          int64           `json:"date"`
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId,omitempty"`
	Description   string          `json:"description"`
	Notes         string          `json:"notes,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
}

// NewTransaction returns a complete Transaction. Defaults: type expense,
// amount 0, date now. A non-positive amount is legal at this layer.
func NewTransaction(t Transaction) Transaction {
	t.Base = newBase(t.ID)
	if t.Type == "" {
		t.Type = TransactionTypeExpense
	}
	if t.Date == 0 {
		t.Date = time.Now().UnixMilli()
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t
}
