package models

// DefaultCategoryColor is used when a category is created without a color
// and as the display fallback for dangling category references.
const DefaultCategoryColor = "#4CAF50"

// Subcategory is owned by exactly one Category and embedded in it. The
// parent back-reference is by ID and is not enforced.
type Subcategory struct {
	Base
	Name             string `json:"name"`
	Color            string `json:"color"`
	ParentCategoryID string `json:"parentCategoryId"`
}

// Category represents a transaction category with its embedded subcategories.
// IncomeOnly and ExpenseOnly are independent flags; nothing stops both from
// being set at once.
type Category struct {
	Base
	Name          string        `json:"name"`
	Color         string        `json:"color"`
	Icon          string        `json:"icon"`
	IncomeOnly    bool          `json:"incomeOnly"`
	ExpenseOnly   bool          `json:"expenseOnly"`
	Subcategories []Subcategory `json:"subcategories"`
}

// NewCategory returns a complete Category, filling every omitted field with
// its documented default.
func NewCategory(c Category) Category {
	c.Base = newBase(c.ID)
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	if c.Icon == "" {
		c.Icon = "default"
	}
	if c.Subcategories == nil {
		c.Subcategories = []Subcategory{}
	}
	return c
}

// NewSubcategory returns a complete Subcategory.
func NewSubcategory(s Subcategory) Subcategory {
	s.Base = newBase(s.ID)
	if s.Color == "" {
		s.Color = DefaultCategoryColor
	}
	return s
}
