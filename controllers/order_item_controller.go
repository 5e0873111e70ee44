package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateOrderServiceRequest represents the request body for creating a
// service line item
type CreateOrderServiceRequest struct {
	OrderID   uint `json:"order_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  *int `json:"quantity" binding:"omitempty,gt=0"`
}

// UpdateOrderServiceRequest represents the request body for updating a
// service line item
type UpdateOrderServiceRequest struct {
	Quantity *int `json:"quantity" binding:"omitempty,gt=0"`
}

// CreateOrderPartRequest represents the request body for creating a part
// line item
type CreateOrderPartRequest struct {
	OrderID  uint `json:"order_id" binding:"required"`
	PartID   uint `json:"part_id" binding:"required"`
	Quantity *int `json:"quantity" binding:"omitempty,gt=0"`
}

// UpdateOrderPartRequest represents the request body for updating a part
// line item
type UpdateOrderPartRequest struct {
	Quantity *int `json:"quantity" binding:"omitempty,gt=0"`
}

// ListOrderServices handles GET /orderservices
func ListOrderServices(c *gin.Context) {
	repo := repositories.NewOrderServiceRepository(config.GetDB())
	items, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list order services")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetOrderService handles GET /orderservices/:id
func GetOrderService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewOrderServiceRepository(config.GetDB())
	item, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "OrderService", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateOrderService handles POST /orderservices
func CreateOrderService(c *gin.Context) {
	var req CreateOrderServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewOrderRepository(db).Get(req.OrderID); err != nil {
		respondGetError(c, err, "Order", req.OrderID)
		return
	}
	if _, err := repositories.NewServiceRepository(db).Get(req.ServiceID); err != nil {
		respondGetError(c, err, "Service", req.ServiceID)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item := models.OrderService{
		OrderID:   req.OrderID,
		ServiceID: req.ServiceID,
		Quantity:  quantity,
	}
	if err := repositories.NewOrderServiceRepository(db).Create(&item); err != nil {
		serverError(c, "Failed to create order service")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateOrderService handles PUT /orderservices/:id
func UpdateOrderService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	repo := repositories.NewOrderServiceRepository(config.GetDB())
	item, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "OrderService", id, "Order service update failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteOrderService handles DELETE /orderservices/:id
func DeleteOrderService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewOrderServiceRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "OrderService", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOrderParts handles GET /orderparts
func ListOrderParts(c *gin.Context) {
	repo := repositories.NewOrderPartRepository(config.GetDB())
	items, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list order parts")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetOrderPart handles GET /orderparts/:id
func GetOrderPart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewOrderPartRepository(config.GetDB())
	item, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "OrderPart", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateOrderPart handles POST /orderparts
func CreateOrderPart(c *gin.Context) {
	var req CreateOrderPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewOrderRepository(db).Get(req.OrderID); err != nil {
		respondGetError(c, err, "Order", req.OrderID)
		return
	}
	if _, err := repositories.NewPartRepository(db).Get(req.PartID); err != nil {
		respondGetError(c, err, "Part", req.PartID)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item := models.OrderPart{
		OrderID:  req.OrderID,
		PartID:   req.PartID,
		Quantity: quantity,
	}
	if err := repositories.NewOrderPartRepository(db).Create(&item); err != nil {
		serverError(c, "Failed to create order part")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateOrderPart handles PUT /orderparts/:id
func UpdateOrderPart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	repo := repositories.NewOrderPartRepository(config.GetDB())
	item, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "OrderPart", id, "Order part update failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteOrderPart handles DELETE /orderparts/:id
func DeleteOrderPart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewOrderPartRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "OrderPart", id)
		return
	}
	c.Status(http.StatusNoContent)
}
