package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	VehicleID   uint   `json:"vehicle_id" binding:"required"`
	MechanicID  *uint  `json:"mechanic_id"`
	Description string `json:"description"`
	IsClosed    *bool  `json:"is_closed"`
}

// UpdateOrderRequest represents the request body for updating an order
type UpdateOrderRequest struct {
	CustomerID  *uint   `json:"customer_id"`
	VehicleID   *uint   `json:"vehicle_id"`
	MechanicID  *uint   `json:"mechanic_id"`
	Description *string `json:"description"`
	IsClosed    *bool   `json:"is_closed"`
}

// ListOrders handles GET /orders
func ListOrders(c *gin.Context) {
	repo := repositories.NewOrderRepository(config.GetDB())
	orders, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewOrderRepository(config.GetDB())
	order, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Order", id)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder handles POST /orders; customer, vehicle and mechanic (when
// given) must all exist
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewCustomerRepository(db).Get(req.CustomerID); err != nil {
		respondGetError(c, err, "Customer", req.CustomerID)
		return
	}
	if _, err := repositories.NewVehicleRepository(db).Get(req.VehicleID); err != nil {
		respondGetError(c, err, "Vehicle", req.VehicleID)
		return
	}
	if req.MechanicID != nil {
		if _, err := repositories.NewMechanicRepository(db).Get(*req.MechanicID); err != nil {
			respondGetError(c, err, "Mechanic", *req.MechanicID)
			return
		}
	}

	order := models.Order{
		CustomerID:  req.CustomerID,
		VehicleID:   req.VehicleID,
		MechanicID:  req.MechanicID,
		Description: req.Description,
	}
	if req.IsClosed != nil {
		order.IsClosed = *req.IsClosed
	}

	if err := repositories.NewOrderRepository(db).Create(&order); err != nil {
		serverError(c, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder handles PUT /orders/:id with partial-update semantics
func UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	db := config.GetDB()
	updates := make(map[string]interface{})
	if req.CustomerID != nil {
		if _, err := repositories.NewCustomerRepository(db).Get(*req.CustomerID); err != nil {
			respondGetError(c, err, "Customer", *req.CustomerID)
			return
		}
		updates["customer_id"] = *req.CustomerID
	}
	if req.VehicleID != nil {
		if _, err := repositories.NewVehicleRepository(db).Get(*req.VehicleID); err != nil {
			respondGetError(c, err, "Vehicle", *req.VehicleID)
			return
		}
		updates["vehicle_id"] = *req.VehicleID
	}
	if req.MechanicID != nil {
		if _, err := repositories.NewMechanicRepository(db).Get(*req.MechanicID); err != nil {
			respondGetError(c, err, "Mechanic", *req.MechanicID)
			return
		}
		updates["mechanic_id"] = *req.MechanicID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsClosed != nil {
		updates["is_closed"] = *req.IsClosed
	}

	order, err := repositories.NewOrderRepository(db).Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Order", id, "Order update failed")
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id, removing the order's status
// history, line items and invoice with it
func DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewOrderRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Order", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOrderStatusHistory handles GET /orders/:id/statuses
func ListOrderStatusHistory(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewOrderRepository(db).Get(orderID); err != nil {
		respondGetError(c, err, "Order", orderID)
		return
	}

	statuses, err := repositories.NewOrderStatusRepository(db).ByOrder(orderID)
	if err != nil {
		serverError(c, "Failed to load status history")
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// parseQuantity reads the optional ?quantity= parameter, defaulting to 1.
func parseQuantity(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("quantity", "1")
	quantity, err := strconv.Atoi(raw)
	if err != nil || quantity < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Quantity must be a positive integer",
		})
		return 0, false
	}
	return quantity, true
}

// AddServiceToOrder handles POST /orders/:id/add_service/:service_id
func AddServiceToOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := parseIDParam(c, "service_id")
	if !ok {
		return
	}
	quantity, ok := parseQuantity(c)
	if !ok {
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewOrderRepository(db).Get(orderID); err != nil {
		respondGetError(c, err, "Order", orderID)
		return
	}
	if _, err := repositories.NewServiceRepository(db).Get(serviceID); err != nil {
		respondGetError(c, err, "Service", serviceID)
		return
	}

	item := models.OrderService{
		OrderID:   orderID,
		ServiceID: serviceID,
		Quantity:  quantity,
	}
	if err := repositories.NewOrderServiceRepository(db).Create(&item); err != nil {
		serverError(c, "Failed to add service to order")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// AddPartToOrder handles POST /orders/:id/add_part/:part_id
func AddPartToOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	partID, ok := parseIDParam(c, "part_id")
	if !ok {
		return
	}
	quantity, ok := parseQuantity(c)
	if !ok {
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewOrderRepository(db).Get(orderID); err != nil {
		respondGetError(c, err, "Order", orderID)
		return
	}
	if _, err := repositories.NewPartRepository(db).Get(partID); err != nil {
		respondGetError(c, err, "Part", partID)
		return
	}

	item := models.OrderPart{
		OrderID:  orderID,
		PartID:   partID,
		Quantity: quantity,
	}
	if err := repositories.NewOrderPartRepository(db).Create(&item); err != nil {
		serverError(c, "Failed to add part to order")
		return
	}
	c.JSON(http.StatusCreated, item)
}
