package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"order-inventory-service/models"
	"order-inventory-service/services"
)

type InventoryController struct {
	inventoryService services.InventoryAPI
}

func NewInventoryController(inventoryService services.InventoryAPI) *InventoryController {
	return &InventoryController{inventoryService: inventoryService}
}

// CreateItem handles POST /inventories
func (ic *InventoryController) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{ErrorMsg: "failed to create inventory item"})
		return
	}

	item, svcErr := ic.inventoryService.CreateItem(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, item.ToResponse())
}

// GetItems handles GET /inventories
func (ic *InventoryController) GetItems(c *gin.Context) {
	items, svcErr := ic.inventoryService.ListItems(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}

	resp := make([]models.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, items[i].ToResponse())
	}
	c.JSON(http.StatusOK, resp)
}

// GetItem handles GET /inventories/:id
func (ic *InventoryController) GetItem(c *gin.Context) {
	id, ok := parseID(c, "item not found")
	if !ok {
		return
	}
	item, svcErr := ic.inventoryService.GetItem(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, item.ToResponse())
}

// UpdateItem handles PUT /inventories/:id
func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "item not found")
	if !ok {
		return
	}
	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{ErrorMsg: "no update payload"})
		return
	}

	item, svcErr := ic.inventoryService.UpdateItem(c.Request.Context(), id, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, item.ToResponse())
}

// DeleteItem handles DELETE /inventories/:id
func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "item not found")
	if !ok {
		return
	}
	item, svcErr := ic.inventoryService.DeleteItem(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{ErrorMsg: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, item.ToResponse())
}

// parseID reads the :id path param; malformed IDs behave like missing
// entities.
func parseID(c *gin.Context, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{ErrorMsg: notFoundMsg})
		return uuid.Nil, false
	}
	return id, true
}
