// Package handlers wires HTTP requests to the service layer.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/insights"
	"pocketledger/internal/logger"
)

// parseTimeRange reads the optional "range" query parameter, defaulting to
// the unbounded window. Returns ErrInvalidInput for unknown ranges.
func parseTimeRange(c *gin.Context) (insights.TimeRange, error) {
	r := insights.TimeRange(c.DefaultQuery("range", string(insights.TimeRangeAll)))
	if !r.Valid() {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "range must be one of 7d, 30d, 90d, 1y, all")
	}
	return r, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
