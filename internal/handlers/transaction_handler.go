package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
	"pocketledger/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
type CreateTransactionRequest struct {
	Amount        float64                `json:"amount" binding:"required,gt=0"`
	Type          models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	CategoryID    string                 `json:"categoryId" binding:"required"`
	SubcategoryID string                 `json:"subcategoryId"`
	Description   string                 `json:"description" binding:"omitempty,max=500"`
	Notes         string                 `json:"notes" binding:"omitempty,max=2000"`
	Tags          []string               `json:"tags"`
	Date          int64                  `json:"date"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
type UpdateTransactionRequest struct {
	Amount        *float64                `json:"amount" binding:"omitempty,gt=0"`
	Type          *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	CategoryID    *string                 `json:"categoryId"`
	SubcategoryID *string                 `json:"subcategoryId"`
	Description   *string                 `json:"description" binding:"omitempty,max=500"`
	Notes         *string                 `json:"notes" binding:"omitempty,max=2000"`
	Tags          []string                `json:"tags"`
	Date          *int64                  `json:"date"`
}

// CreateTransaction handles the creation of a new transaction.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(
		req.Amount, req.Type, req.CategoryID, req.SubcategoryID, req.Description, req.Notes, req.Tags, req.Date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing transactions with filters and pagination.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var txType models.TransactionType
	if v := c.Query("type"); v != "" {
		txType = models.TransactionType(v)
		if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'"))
			return
		}
	}

	filter := services.TransactionFilter{
		Range:      timeRange,
		CategoryID: c.Query("categoryId"),
		Type:       txType,
	}
	c.JSON(http.StatusOK, h.transactionService.GetTransactions(filter, page))
}

// GetTransaction handles retrieving a specific transaction.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.transactionService.GetTransactionByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles updating an existing transaction.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(
		c.Param("id"), req.Amount, req.Type, req.CategoryID, req.SubcategoryID,
		req.Description, req.Notes, req.Tags, req.Date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
