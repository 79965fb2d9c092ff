package routes

import (
	"github.com/gin-gonic/gin"

	"order-inventory-service/controllers"
)

// RegisterRoutes registers the inventory and order endpoints.
func RegisterRoutes(r *gin.Engine, inventory *controllers.InventoryController, orders *controllers.OrderController) {
	inventories := r.Group("/inventories")
	{
		inventories.POST("", inventory.CreateItem)
		inventories.GET("", inventory.GetItems)
		inventories.GET("/:id", inventory.GetItem)
		inventories.PUT("/:id", inventory.UpdateItem)
		inventories.DELETE("/:id", inventory.DeleteItem)
	}

	orderRoutes := r.Group("/orders")
	{
		orderRoutes.POST("", orders.CreateOrder)
		orderRoutes.GET("", orders.GetOrders)
		orderRoutes.GET("/:id", orders.GetOrder)
		orderRoutes.PUT("/:id", orders.UpdateOrder)
		orderRoutes.DELETE("/:id", orders.DeleteOrder)
	}
}
