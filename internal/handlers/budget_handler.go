package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	CategoryID    string              `json:"categoryId" binding:"required"`
	SubcategoryID string              `json:"subcategoryId"`
	Amount        float64             `json:"amount" binding:"required,gt=0"`
	Period        models.BudgetPeriod `json:"period" binding:"omitempty,budget_period"`
	StartDate     int64               `json:"startDate"`
	EndDate       *int64              `json:"endDate"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Amount    *float64             `json:"amount" binding:"omitempty,gt=0"`
	Period    *models.BudgetPeriod `json:"period" binding:"omitempty,budget_period"`
	StartDate *int64               `json:"startDate"`
	EndDate   *int64               `json:"endDate"`
}

// CreateBudget handles the creation of a new budget.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.CreateBudget(
		req.CategoryID, req.SubcategoryID, req.Amount, req.Period, req.StartDate, req.EndDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing all budgets.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgets": h.budgetService.GetBudgets()})
}

// GetBudget handles retrieving a specific budget.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.budgetService.GetBudgetByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles updating an existing budget.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Param("id"), req.Amount, req.Period, req.StartDate, req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.budgetService.DeleteBudget(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// GetBudgetProgress handles retrieving spending progress for one budget.
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
	progress, err := h.budgetService.GetBudgetProgress(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// GetAllBudgetProgress handles retrieving spending progress for every budget.
func (h *BudgetHandler) GetAllBudgetProgress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"progress": h.budgetService.GetAllBudgetProgress()})
}
