package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/charts"
	"pocketledger/internal/services"
)

// InsightHandler serves aggregations and their chart renderings.
type InsightHandler struct {
	insightService services.InsightServicer
	renderer       *charts.Renderer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer, renderer *charts.Renderer) *InsightHandler {
	return &InsightHandler{insightService: insightService, renderer: renderer}
}

// GetSummary handles the headline totals for a window, optionally narrowed
// to one category.
func (h *InsightHandler) GetSummary(c *gin.Context) {
	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": h.insightService.GetSummary(timeRange, c.Query("categoryId"))})
}

// GetExpenseBreakdown handles the expense-by-category breakdown.
func (h *InsightHandler) GetExpenseBreakdown(c *gin.Context) {
	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": h.insightService.GetExpenseBreakdown(timeRange)})
}

// GetMonthlySeries handles the per-month income and expense totals.
func (h *InsightHandler) GetMonthlySeries(c *gin.Context) {
	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": h.insightService.GetMonthlySeries(timeRange)})
}

// GetRunningBalance handles the per-transaction running balance.
func (h *InsightHandler) GetRunningBalance(c *gin.Context) {
	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": h.insightService.GetRunningBalance(timeRange)})
}

// GetCategoryTrends handles the month-by-category expense pivot.
func (h *InsightHandler) GetCategoryTrends(c *gin.Context) {
	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": h.insightService.GetCategoryTrends(timeRange)})
}

// GetBreakdownChart renders the expense breakdown as a PNG pie chart.
func (h *InsightHandler) GetBreakdownChart(c *gin.Context) {
	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := h.renderer.BreakdownPie(h.insightService.GetExpenseBreakdown(timeRange))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if png == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetMonthlyChart renders the monthly series as a PNG line chart.
func (h *InsightHandler) GetMonthlyChart(c *gin.Context) {
	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := h.renderer.MonthlySeries(h.insightService.GetMonthlySeries(timeRange))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if png == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// GetBalanceChart renders the running balance as a PNG time series.
func (h *InsightHandler) GetBalanceChart(c *gin.Context) {
	timeRange, err := parseTimeRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := h.renderer.BalanceLine(h.insightService.GetRunningBalance(timeRange))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if png == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
