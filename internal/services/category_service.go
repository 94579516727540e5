package services

import (
	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store *store.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(s *store.Store) CategoryServicer {
	return &categoryService{store: s}
}

// CreateCategory creates a new category. The name is required here even
// though the model layer would accept an empty one.
func (s *categoryService) CreateCategory(name, color, icon string, incomeOnly, expenseOnly bool) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := models.NewCategory(models.Category{
		Name:        name,
		Color:       color,
		Icon:        icon,
		IncomeOnly:  incomeOnly,
		ExpenseOnly: expenseOnly,
	})
	if err := s.store.Categories.Add(category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategories returns all categories in stored order.
func (s *categoryService) GetCategories() []models.Category {
	return s.store.Categories.GetAll()
}

// GetCategoryByID returns a category by ID.
func (s *categoryService) GetCategoryByID(id string) (*models.Category, error) {
	category, ok := s.store.Categories.GetByID(id)
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &category, nil
}

// UpdateCategory updates the provided fields of an existing category.
func (s *categoryService) UpdateCategory(id string, name, color, icon *string, incomeOnly, expenseOnly *bool) (*models.Category, error) {
	if name != nil && *name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	updated, found, err := s.store.Categories.Update(id, func(c *models.Category) {
		if name != nil {
			c.Name = *name
		}
		if color != nil {
			c.Color = *color
		}
		if icon != nil {
			c.Icon = *icon
		}
		if incomeOnly != nil {
			c.IncomeOnly = *incomeOnly
		}
		if expenseOnly != nil {
			c.ExpenseOnly = *expenseOnly
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &updated, nil
}

// DeleteCategory removes a category. Transactions and budgets referencing it
// are left untouched; their category IDs go dangling and resolve to the
// fallback label at read time.
func (s *categoryService) DeleteCategory(id string) error {
	if _, ok := s.store.Categories.GetByID(id); !ok {
		return apperrors.ErrCategoryNotFound
	}
	return s.store.Categories.Delete(id)
}

// AddSubcategory appends a subcategory to the given category.
func (s *categoryService) AddSubcategory(categoryID, name, color string) (*models.Subcategory, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "subcategory name is required")
	}

	subcategory := models.NewSubcategory(models.Subcategory{
		Name:             name,
		Color:            color,
		ParentCategoryID: categoryID,
	})

	_, found, err := s.store.Categories.Update(categoryID, func(c *models.Category) {
		c.Subcategories = append(c.Subcategories, subcategory)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &subcategory, nil
}

// UpdateSubcategory updates the provided fields of an embedded subcategory.
func (s *categoryService) UpdateSubcategory(categoryID, subcategoryID string, name, color *string) (*models.Subcategory, error) {
	if name != nil && *name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "subcategory name is required")
	}

	var updated *models.Subcategory
	_, found, err := s.store.Categories.Update(categoryID, func(c *models.Category) {
		for i := range c.Subcategories {
			if c.Subcategories[i].ID != subcategoryID {
				continue
			}
			if name != nil {
				c.Subcategories[i].Name = *name
			}
			if color != nil {
				c.Subcategories[i].Color = *color
			}
			updated = &c.Subcategories[i]
			return
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrCategoryNotFound
	}
	if updated == nil {
		return nil, apperrors.ErrSubcategoryNotFound
	}
	return updated, nil
}

// DeleteSubcategory removes an embedded subcategory from its category.
func (s *categoryService) DeleteSubcategory(categoryID, subcategoryID string) error {
	removed := false
	_, found, err := s.store.Categories.Update(categoryID, func(c *models.Category) {
		kept := c.Subcategories[:0]
		for _, sub := range c.Subcategories {
			if sub.ID == subcategoryID {
				removed = true
				continue
			}
			kept = append(kept, sub)
		}
		c.Subcategories = kept
	})
	if err != nil {
		return err
	}
	if !found {
		return apperrors.ErrCategoryNotFound
	}
	if !removed {
		return apperrors.ErrSubcategoryNotFound
	}
	return nil
}
