package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/server/handlers"
)

// Handlers bundles every HTTP adapter the route table needs.
type Handlers struct {
	Ledger    *handlers.LedgerHandler
	Salary    *handlers.SalaryHandler
	Message   *handlers.MessageHandler
	Inventory *handlers.InventoryHandler
	Metrics   *handlers.MetricsHandler
	Data      *handlers.DataHandler
	Export    *handlers.ExportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(handlers.Identity())

	api := r.Group("/api")

	api.GET("/purchases", h.Ledger.ListPurchases)
	api.POST("/purchases", h.Ledger.CreatePurchase)
	api.DELETE("/purchases/:id", h.Ledger.DeletePurchase)

	api.GET("/assignments", h.Ledger.ListAssignments)
	api.POST("/assignments", h.Ledger.CreateAssignment)
	api.DELETE("/assignments/:id", h.Ledger.DeleteAssignment)
	api.PUT("/assignments/:id/status", h.Ledger.UpdateAssignmentStatus)
	api.DELETE("/assignments/:id/sales/:saleId", h.Ledger.DeleteSale)

	api.GET("/sales", h.Ledger.ListSales)
	api.POST("/sales", h.Ledger.CreateSale)

	api.GET("/expenses/car", h.Ledger.ListCarExpenses)
	api.POST("/expenses/car", h.Ledger.CreateCarExpense)
	api.DELETE("/expenses/car/:id", h.Ledger.DeleteCarExpense)
	api.GET("/expenses/other", h.Ledger.ListOtherExpenses)
	api.POST("/expenses/other", h.Ledger.CreateOtherExpense)
	api.DELETE("/expenses/other/:id", h.Ledger.DeleteOtherExpense)

	api.GET("/salaries", h.Salary.ListSalaries)
	api.POST("/salaries", h.Salary.CreateSalary)
	api.PUT("/salaries/:email", h.Salary.UpdateSalary)
	api.GET("/salary-payments", h.Salary.ListPayments)
	api.POST("/salary-payments", h.Salary.CreatePayment)
	api.POST("/salary-payments/:id/toggle-status", h.Salary.TogglePayment)

	api.GET("/ceo/messages", h.Message.ListMessages)
	api.POST("/ceo/messages", h.Message.CreateMessage)
	api.POST("/ceo/messages/:id/read", h.Message.MarkRead)

	api.GET("/inventory", h.Inventory.ListItems)
	api.POST("/inventory", h.Inventory.CreateItem)
	api.GET("/stock/movements", h.Inventory.ListMovements)
	api.POST("/stock/movements", h.Inventory.CreateMovement)
	api.GET("/stock/current", h.Inventory.CurrentStock)
	api.GET("/gradients", h.Inventory.ListGradients)
	api.POST("/gradients", h.Inventory.CreateGradient)

	api.GET("/stats", h.Metrics.Stats)
	api.GET("/performance/stats", h.Metrics.Stats)
	api.GET("/performance/fruit", h.Metrics.FruitPerformance)
	api.GET("/performance/monthly", h.Metrics.MonthlyPerformance)

	api.DELETE("/data/clear-purchases", h.Data.ClearPurchases)
	api.DELETE("/data/clear-sales", h.Data.ClearSales)
	api.DELETE("/data/clear-car-expenses", h.Data.ClearCarExpenses)
	api.DELETE("/data/clear-other-expenses", h.Data.ClearOtherExpenses)
	api.DELETE("/data/clear-salaries", h.Data.ClearSalaries)
	api.DELETE("/data/clear-inventory", h.Data.ClearInventory)
	api.DELETE("/data/clear-all", h.Data.ClearAll)

	api.POST("/export", h.Export.Snapshot)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
