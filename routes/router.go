package routes

import (
	"github.com/gin-gonic/gin"

	"resto-api/controllers"
	"resto-api/middlewares"
	"resto-api/services"
)

func RegisterRoutes(r *gin.Engine, auth services.AuthService) {

	r.POST("/login", controllers.Login)

	// Public endpoints for the landing page
	public := r.Group("/public")
	{
		public.GET("/menu", controllers.GetPublicMenu)
		public.POST("/feedback", controllers.SubmitFeedback)
	}

	admin := r.Group("")
	admin.Use(middlewares.AuthMiddleware(auth), middlewares.RoleMiddleware(services.RoleAdmin))

	// Menu
	menu := admin.Group("/menu")
	{
		menu.GET("", controllers.GetMenuItems)
		menu.GET("/:id", controllers.GetMenuItemByID)
		menu.POST("", controllers.CreateMenuItem)
		menu.PUT("/:id", controllers.UpdateMenuItem)
		menu.DELETE("/:id", controllers.DeleteMenuItem)
	}

	// Inventory
	inventory := admin.Group("/inventory")
	{
		inventory.GET("", controllers.GetInventory)
		inventory.GET("/:id", controllers.GetInventoryItemByID)
		inventory.POST("", controllers.CreateInventoryItem)
		inventory.PUT("/:id", controllers.UpdateInventoryItem)
		inventory.PATCH("/:id/stock", controllers.UpdateInventoryStock)
		inventory.DELETE("/:id", controllers.DeleteInventoryItem)
	}

	// Tables
	tables := admin.Group("/tables")
	{
		tables.GET("", controllers.GetTables)
		tables.GET("/:id", controllers.GetTableByID)
		tables.POST("", controllers.CreateTable)
		tables.PUT("/:id", controllers.UpdateTable)
		tables.PATCH("/:id/status", controllers.UpdateTableStatus)
		tables.DELETE("/:id", controllers.DeleteTable)
	}

	// Reservations
	reservations := admin.Group("/reservations")
	{
		reservations.GET("", controllers.GetReservations)
		reservations.GET("/:id", controllers.GetReservationByID)
		reservations.POST("", controllers.BookTable)
		reservations.PATCH("/:id/status", controllers.UpdateReservationStatus)
		reservations.DELETE("/:id", controllers.DeleteReservation)
	}

	// Orders
	orders := admin.Group("/orders")
	{
		orders.POST("/quote", controllers.QuoteOrder)
		orders.POST("", controllers.PlaceOrder)
	}

	// Sales history
	sales := admin.Group("/sales")
	{
		sales.GET("", controllers.GetSales)
		sales.GET("/export", controllers.ExportSales)
		sales.GET("/:id", controllers.GetSaleByID)
	}

	// Billing
	billing := admin.Group("/billing")
	{
		billing.GET("", controllers.GetBillingSettings)
		billing.PUT("", controllers.UpdateBillingSettings)
	}

	// Feedback
	feedback := admin.Group("/feedback")
	{
		feedback.GET("", controllers.GetFeedback)
		feedback.DELETE("/:id", controllers.DeleteFeedback)
	}

	// Dashboard
	dashboard := admin.Group("/dashboard")
	{
		dashboard.GET("", controllers.GetDashboard)
		dashboard.GET("/forecast", controllers.GetForecast)
	}
}
