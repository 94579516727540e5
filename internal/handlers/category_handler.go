package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Color       string `json:"color" binding:"omitempty,hex_color"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
	IncomeOnly  bool   `json:"incomeOnly"`
	ExpenseOnly bool   `json:"expenseOnly"`
}

// UpdateCategoryRequest represents the request payload for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Color       *string `json:"color" binding:"omitempty,hex_color"`
	Icon        *string `json:"icon" binding:"omitempty,max=50"`
	IncomeOnly  *bool   `json:"incomeOnly"`
	ExpenseOnly *bool   `json:"expenseOnly"`
}

// SubcategoryRequest represents the request payload for adding a subcategory.
type SubcategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,hex_color"`
}

// UpdateSubcategoryRequest represents the request payload for updating a subcategory.
type UpdateSubcategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Color *string `json:"color" binding:"omitempty,hex_color"`
}

// CreateCategory handles the creation of a new category.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Color, req.Icon, req.IncomeOnly, req.ExpenseOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategories handles listing all categories.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.categoryService.GetCategories()})
}

// GetCategory handles retrieving a specific category.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// UpdateCategory handles updating an existing category.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Param("id"), req.Name, req.Color, req.Icon, req.IncomeOnly, req.ExpenseOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles deleting a category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// AddSubcategory handles appending a subcategory to a category.
func (h *CategoryHandler) AddSubcategory(c *gin.Context) {
	var req SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	subcategory, err := h.categoryService.AddSubcategory(c.Param("id"), req.Name, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subcategory": subcategory})
}

// UpdateSubcategory handles updating an embedded subcategory.
func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	var req UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	subcategory, err := h.categoryService.UpdateSubcategory(c.Param("id"), c.Param("subId"), req.Name, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subcategory": subcategory})
}

// DeleteSubcategory handles removing an embedded subcategory.
func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.categoryService.DeleteSubcategory(c.Param("id"), c.Param("subId")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}
