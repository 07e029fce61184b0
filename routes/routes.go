package routes

import (
	"restaurant-os/handlers"
	"restaurant-os/middleware"
	"restaurant-os/realtime"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface. The hub is passed to every handler
// that publishes change events rather than living in shared global scope.
func SetupRoutes(r *gin.Engine, hub *realtime.Hub) {
	// ── Auth bootstrap (no token required) ─────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
	}

	// ── Real-time channel (transport handshake only) ───────────────
	r.GET("/ws", hub.HandleWS)

	// ── Authenticated API ──────────────────────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		api.GET("/auth/user", handlers.GetCurrentUser)

		// Dashboard
		api.GET("/dashboard/stats", handlers.GetDashboardStats)

		// Tables
		api.GET("/tables", handlers.GetTables)
		api.POST("/tables", handlers.CreateTable)
		api.PATCH("/tables/:id/status", handlers.UpdateTableStatus(hub))

		// Categories
		api.GET("/categories", handlers.GetCategories)
		api.POST("/categories", handlers.CreateCategory)

		// Menu items
		api.GET("/menu-items", handlers.GetMenuItems)
		api.POST("/menu-items", handlers.CreateMenuItem)
		api.PATCH("/menu-items/:id/availability", handlers.UpdateMenuItemAvailability)

		// Orders
		api.GET("/orders", handlers.GetOrders)
		api.GET("/orders/kitchen", handlers.GetKitchenOrders)
		api.POST("/orders", handlers.CreateOrder(hub))
		api.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(hub))

		// Order items
		api.PATCH("/order-items/:id/status", handlers.UpdateOrderItemStatus(hub))

		// Inventory
		api.GET("/inventory", handlers.GetInventory)
		api.GET("/inventory/low-stock", handlers.GetLowStockItems)
		api.POST("/inventory", handlers.CreateInventoryItem)
		api.PATCH("/inventory/:id/stock", handlers.UpdateInventoryStock)

		// Staff
		api.GET("/staff", handlers.GetStaff)
		api.POST("/staff", handlers.CreateStaff)
	}
}
