package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// DebtHandler handles debt and repayment requests.
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebtRequest represents the request payload for creating a debt.
type CreateDebtRequest struct {
	Amount      float64         `json:"amount" binding:"required,gt=0"`
	Type        models.DebtType `json:"type" binding:"omitempty,debt_type"`
	Date        int64           `json:"date"`
	DueDate     int64           `json:"dueDate"`
	PersonName  string          `json:"personName" binding:"required,min=1,max=100"`
	Interest    float64         `json:"interest" binding:"omitempty,gte=0"`
	Description string          `json:"description" binding:"omitempty,max=500"`
}

// UpdateDebtRequest represents the request payload for updating a debt.
type UpdateDebtRequest struct {
	Amount      *float64         `json:"amount" binding:"omitempty,gt=0"`
	Type        *models.DebtType `json:"type" binding:"omitempty,debt_type"`
	Date        *int64           `json:"date"`
	DueDate     *int64           `json:"dueDate"`
	PersonName  *string          `json:"personName" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Interest    *float64         `json:"interest" binding:"omitempty,gte=0"`
}

// CreateRepaymentRequest represents the request payload for recording a repayment.
type CreateRepaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   int64   `json:"date"`
	Note   string  `json:"note" binding:"omitempty,max=500"`
}

// CreateDebt handles the creation of a new debt.
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.CreateDebt(
		req.Amount, req.Type, req.Date, req.DueDate, req.PersonName, req.Interest, req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetDebts handles listing all debts.
func (h *DebtHandler) GetDebts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"debts": h.debtService.GetDebts()})
}

// GetDebt handles retrieving a specific debt.
func (h *DebtHandler) GetDebt(c *gin.Context) {
	debt, err := h.debtService.GetDebtByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// UpdateDebt handles updating an existing debt.
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.UpdateDebt(
		c.Param("id"), req.Amount, req.Type, req.Date, req.DueDate,
		req.PersonName, req.Description, req.Interest,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt handles deleting a debt.
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	if err := h.debtService.DeleteDebt(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted successfully"})
}

// MarkDebtPaid handles forcing a debt to paid status.
func (h *DebtHandler) MarkDebtPaid(c *gin.Context) {
	debt, err := h.debtService.MarkDebtPaid(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// CreateRepayment handles recording a repayment against a debt.
func (h *DebtHandler) CreateRepayment(c *gin.Context) {
	var req CreateRepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	repayment, err := h.debtService.AddRepayment(c.Param("id"), req.Amount, req.Date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"repayment": repayment})
}

// GetRepayments handles listing repayments for a debt.
func (h *DebtHandler) GetRepayments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"repayments": h.debtService.GetRepayments(c.Param("id"))})
}

// DeleteRepayment handles removing a repayment.
func (h *DebtHandler) DeleteRepayment(c *gin.Context) {
	if err := h.debtService.DeleteRepayment(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Repayment deleted successfully"})
}
