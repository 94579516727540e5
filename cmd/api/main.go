package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/charts"
	"pocketledger/internal/config"
	"pocketledger/internal/handlers"
	"pocketledger/internal/logger"
	"pocketledger/internal/middleware"
	"pocketledger/internal/services"
	"pocketledger/internal/store"
	"pocketledger/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Open the storage backend and build the store
	backend, err := store.NewSQLiteBackend(appConfig.DBPath, appConfig.StorageQuota)
	if err != nil {
		return fmt.Errorf("failed to open storage backend: %w", err)
	}
	defer backend.Close()
	dataStore := store.New(backend)

	// Initialize services
	categoryService := services.NewCategoryService(dataStore)
	transactionService := services.NewTransactionService(dataStore)
	budgetService := services.NewBudgetService(dataStore)
	debtService := services.NewDebtService(dataStore)
	notificationService := services.NewNotificationService(dataStore)
	settingsService := services.NewSettingsService(dataStore)
	insightService := services.NewInsightService(dataStore)
	portabilityService := services.NewPortabilityService(dataStore)
	syncService := services.NewSyncService(dataStore, appConfig.RemoteTimeout)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	debtHandler := handlers.NewDebtHandler(debtService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	insightHandler := handlers.NewInsightHandler(insightService, charts.NewRenderer())
	portabilityHandler := handlers.NewPortabilityHandler(portabilityService)
	syncHandler := handlers.NewSyncHandler(syncService)
	storeHandler := handlers.NewStoreHandler(backend)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Category routes
	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
	categories.POST("/:id/subcategories", categoryHandler.AddSubcategory)
	categories.PUT("/:id/subcategories/:subId", categoryHandler.UpdateSubcategory)
	categories.DELETE("/:id/subcategories/:subId", categoryHandler.DeleteSubcategory)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/progress", budgetHandler.GetAllBudgetProgress)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	// Debt routes
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

	// Notification routes
	notifications := v1.Group("/notifications")
	notifications.GET("", notificationHandler.GetNotifications)
	notifications.POST("/checks", notificationHandler.RunChecks)
	notifications.POST("/read", notificationHandler.MarkAllRead)
	notifications.POST("/:id/read", notificationHandler.MarkRead)
	notifications.DELETE("/:id", notificationHandler.DeleteNotification)

	// Settings routes
	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.UpdateSettings)

	// Insight routes
	insightsGroup := v1.Group("/insights")
	insightsGroup.GET("/summary", insightHandler.GetSummary)
	insightsGroup.GET("/breakdown", insightHandler.GetExpenseBreakdown)
	insightsGroup.GET("/monthly", insightHandler.GetMonthlySeries)
	insightsGroup.GET("/balance", insightHandler.GetRunningBalance)
	insightsGroup.GET("/trends", insightHandler.GetCategoryTrends)
	insightsGroup.GET("/breakdown/chart", insightHandler.GetBreakdownChart)
	insightsGroup.GET("/monthly/chart", insightHandler.GetMonthlyChart)
	insightsGroup.GET("/balance/chart", insightHandler.GetBalanceChart)

	// Portability routes
	v1.GET("/export", portabilityHandler.Export)
	v1.POST("/import", portabilityHandler.Import)
	v1.DELETE("/data", portabilityHandler.ClearAll)
	v1.GET("/storage", portabilityHandler.StorageInfo)

	// Remote sync routes
	v1.POST("/sync", syncHandler.SyncAll)
	v1.GET("/sync/ping", syncHandler.PingRemote)

	// Raw store mirror, the contract remote.Client speaks. The ping route is
	// registered before the collection wildcard so it wins the match.
	storeGroup := router.Group("/store")
	storeGroup.GET("/ping", storeHandler.Ping)
	storeGroup.GET("/:collection", storeHandler.GetCollection)
	storeGroup.POST("/:collection", storeHandler.AddRecord)
	storeGroup.POST("/:collection/sync", storeHandler.SyncCollection)
	storeGroup.GET("/:collection/:id", storeHandler.GetRecord)
	storeGroup.PATCH("/:collection/:id", storeHandler.PatchRecord)
	storeGroup.DELETE("/:collection/:id", storeHandler.DeleteRecord)

	log.Infof("Starting Pocketledger server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
