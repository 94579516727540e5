// Package errors provides custom error types for the Pocketledger API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Storage errors. Quota failures must reach the caller so the UI can
// suggest enabling remote storage; parse failures never do.
var (
	ErrStorageQuotaExceeded = &AppError{Code: "STORAGE_QUOTA_EXCEEDED", Message: "Local storage quota exceeded. Consider enabling remote storage in settings", StatusCode: http.StatusInsufficientStorage}
	ErrStorageUnavailable   = &AppError{Code: "STORAGE_UNAVAILABLE", Message: "Storage backend is unavailable", StatusCode: http.StatusInternalServerError}
)

// Remote mirror errors. Always non-fatal for the local store.
var (
	ErrRemoteUnavailable   = &AppError{Code: "REMOTE_UNAVAILABLE", Message: "Remote store is unreachable", StatusCode: http.StatusBadGateway}
	ErrRemoteNotConfigured = &AppError{Code: "REMOTE_NOT_CONFIGURED", Message: "Remote store URL is not configured", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrSubcategoryNotFound = &AppError{Code: "SUBCATEGORY_NOT_FOUND", Message: "Subcategory not found", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Debt errors.
var (
	ErrDebtNotFound      = &AppError{Code: "DEBT_NOT_FOUND", Message: "Debt not found", StatusCode: http.StatusNotFound}
	ErrRepaymentNotFound = &AppError{Code: "REPAYMENT_NOT_FOUND", Message: "Repayment not found", StatusCode: http.StatusNotFound}
)

// Notification errors.
var (
	ErrNotificationNotFound = &AppError{Code: "NOTIFICATION_NOT_FOUND", Message: "Notification not found", StatusCode: http.StatusNotFound}
)

// Data portability errors.
var (
	ErrInvalidImport      = &AppError{Code: "INVALID_IMPORT", Message: "Import document is missing required collections", StatusCode: http.StatusBadRequest}
	ErrUnknownCollection  = &AppError{Code: "UNKNOWN_COLLECTION", Message: "Unknown collection", StatusCode: http.StatusNotFound}
)
