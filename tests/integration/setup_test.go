package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/charts"
	"pocketledger/internal/handlers"
	"pocketledger/internal/logger"
	"pocketledger/internal/middleware"
	"pocketledger/internal/services"
	"pocketledger/internal/store"
	"pocketledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Store  *store.Store
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// backend.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	backend := store.NewMemoryBackend(0)
	dataStore := store.New(backend)

	// Services
	categoryService := services.NewCategoryService(dataStore)
	transactionService := services.NewTransactionService(dataStore)
	budgetService := services.NewBudgetService(dataStore)
	debtService := services.NewDebtService(dataStore)
	notificationService := services.NewNotificationService(dataStore)
	settingsService := services.NewSettingsService(dataStore)
	insightService := services.NewInsightService(dataStore)
	portabilityService := services.NewPortabilityService(dataStore)

	// Handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	debtHandler := handlers.NewDebtHandler(debtService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	insightHandler := handlers.NewInsightHandler(insightService, charts.NewRenderer())
	portabilityHandler := handlers.NewPortabilityHandler(portabilityService)
	storeHandler := handlers.NewStoreHandler(backend)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
	categories.POST("/:id/subcategories", categoryHandler.AddSubcategory)
	categories.PUT("/:id/subcategories/:subId", categoryHandler.UpdateSubcategory)
	categories.DELETE("/:id/subcategories/:subId", categoryHandler.DeleteSubcategory)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/progress", budgetHandler.GetAllBudgetProgress)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	debts := v1.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetDebts)
	debts.GET("/:id", debtHandler.GetDebt)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.POST("/:id/paid", debtHandler.MarkDebtPaid)
	debts.POST("/:id/repayments", debtHandler.CreateRepayment)
	debts.GET("/:id/repayments", debtHandler.GetRepayments)
	v1.DELETE("/repayments/:id", debtHandler.DeleteRepayment)

	notifications := v1.Group("/notifications")
	notifications.GET("", notificationHandler.GetNotifications)
	notifications.POST("/checks", notificationHandler.RunChecks)
	notifications.POST("/read", notificationHandler.MarkAllRead)
	notifications.POST("/:id/read", notificationHandler.MarkRead)
	notifications.DELETE("/:id", notificationHandler.DeleteNotification)

	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.UpdateSettings)

	insightsGroup := v1.Group("/insights")
	insightsGroup.GET("/summary", insightHandler.GetSummary)
	insightsGroup.GET("/breakdown", insightHandler.GetExpenseBreakdown)
	insightsGroup.GET("/monthly", insightHandler.GetMonthlySeries)
	insightsGroup.GET("/balance", insightHandler.GetRunningBalance)
	insightsGroup.GET("/trends", insightHandler.GetCategoryTrends)

	v1.GET("/export", portabilityHandler.Export)
	v1.POST("/import", portabilityHandler.Import)
	v1.DELETE("/data", portabilityHandler.ClearAll)
	v1.GET("/storage", portabilityHandler.StorageInfo)

	storeGroup := router.Group("/store")
	storeGroup.GET("/ping", storeHandler.Ping)
	storeGroup.GET("/:collection", storeHandler.GetCollection)
	storeGroup.POST("/:collection", storeHandler.AddRecord)
	storeGroup.POST("/:collection/sync", storeHandler.SyncCollection)
	storeGroup.GET("/:collection/:id", storeHandler.GetRecord)
	storeGroup.PATCH("/:collection/:id", storeHandler.PatchRecord)
	storeGroup.DELETE("/:collection/:id", storeHandler.DeleteRecord)

	return &testApp{Store: dataStore, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createCategory creates a category over HTTP and returns its ID.
func (app *testApp) createCategory(t *testing.T, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/categories", `{"name":"`+name+`"}`)
	if rec.Code != 201 {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	category := parseJSON(t, rec)["category"].(map[string]interface{})
	return category["id"].(string)
}
