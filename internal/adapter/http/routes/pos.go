package routes

import (
	"respresso/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathUsers     = "/users"
	PathProducts  = "/products"
	PathOrders    = "/orders"
	PathSessions  = "/sessions"
	PathInventory = "/inventory"
	PathDebts     = "/debts"
	PathReports   = "/reports"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}
}

func addStoreRoutes(
	rg *gin.RouterGroup,
	userHandler *handlers.UserHandler,
	productHandler *handlers.ProductHandler,
	orderHandler *handlers.OrderHandler,
	sessionHandler *handlers.SessionHandler,
	inventoryHandler *handlers.InventoryHandler,
	debtHandler *handlers.DebtHandler,
) {
	users := rg.Group(PathUsers)
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.PATCH("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.Create)
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.GetByID)
		products.PATCH("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.Start)
		sessions.GET("", sessionHandler.List)
		sessions.GET("/active", sessionHandler.ListActive)
		sessions.PATCH("/:id/complete", sessionHandler.Complete)
		sessions.PATCH("/:id/cancel", sessionHandler.Cancel)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.POST("/logs", inventoryHandler.AddLog)
		inventory.GET("/logs", inventoryHandler.ListLogs)
		inventory.GET("/activity", inventoryHandler.ActivityLogs)
	}

	debts := rg.Group(PathDebts)
	{
		debts.POST("/payments", debtHandler.AddPayment)
		debts.GET("/payments", debtHandler.ListPayments)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/stats", reportHandler.Stats)
		reports.GET("/analytics", reportHandler.Analytics)
		reports.GET("/dashboard", reportHandler.Dashboard)
	}
}
