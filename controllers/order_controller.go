package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order-inventory-service/models"
	"order-inventory-service/services"
)

type OrderController struct {
	orderService services.OrderAPI
}

func NewOrderController(orderService services.OrderAPI) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder handles POST /orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{ErrorMsg: "failed to create new order"})
		return
	}

	order, svcErr := oc.orderService.CreateOrder(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, order.ToResponse())
}

// GetOrders handles GET /orders
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, svcErr := oc.orderService.ListOrders(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}

	resp := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, orders[i].ToResponse())
	}
	c.JSON(http.StatusOK, resp)
}

// GetOrder handles GET /orders/:id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "order not found")
	if !ok {
		return
	}
	order, svcErr := oc.orderService.GetOrder(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, order.ToResponse())
}

// UpdateOrder handles PUT /orders/:id
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "order not found")
	if !ok {
		return
	}
	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{ErrorMsg: "failed to update order"})
		return
	}

	order, svcErr := oc.orderService.UpdateOrder(c.Request.Context(), id, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, order.ToResponse())
}

// DeleteOrder handles DELETE /orders/:id
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "order not found")
	if !ok {
		return
	}
	order, svcErr := oc.orderService.DeleteOrder(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, order.ToResponse())
}
