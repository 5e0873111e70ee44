package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateOrderStatusRequest represents the request body for appending a
// status record to an order's history
type CreateOrderStatusRequest struct {
	OrderID uint          `json:"order_id" binding:"required"`
	Status  models.Status `json:"status"`
	Note    string        `json:"note"`
}

// UpdateOrderStatusRequest represents the request body for the admin
// override of a history record; the timestamp is never updatable
type UpdateOrderStatusRequest struct {
	Status *models.Status `json:"status"`
	Note   *string        `json:"note"`
}

// ListOrderStatuses handles GET /orderstatuses
func ListOrderStatuses(c *gin.Context) {
	repo := repositories.NewOrderStatusRepository(config.GetDB())
	statuses, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list order statuses")
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// GetOrderStatus handles GET /orderstatuses/:id
func GetOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewOrderStatusRepository(config.GetDB())
	status, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "OrderStatus", id)
		return
	}
	c.JSON(http.StatusOK, status)
}

// CreateOrderStatus handles POST /orderstatuses, appending to the order's
// history. Any status may follow any other; only value membership is
// checked.
func CreateOrderStatus(c *gin.Context) {
	var req CreateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusReceived
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Unknown status value: " + string(status),
		})
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewOrderRepository(db).Get(req.OrderID); err != nil {
		respondGetError(c, err, "Order", req.OrderID)
		return
	}

	record := models.OrderStatus{
		OrderID: req.OrderID,
		Status:  status,
		Note:    req.Note,
	}
	if err := repositories.NewOrderStatusRepository(db).Create(&record); err != nil {
		serverError(c, "Failed to create order status")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateOrderStatus handles PUT /orderstatuses/:id (admin override)
func UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": "Unknown status value: " + string(*req.Status),
			})
			return
		}
		updates["status"] = *req.Status
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}

	repo := repositories.NewOrderStatusRepository(config.GetDB())
	status, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "OrderStatus", id, "Order status update failed")
		return
	}
	c.JSON(http.StatusOK, status)
}

// DeleteOrderStatus handles DELETE /orderstatuses/:id
func DeleteOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewOrderStatusRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "OrderStatus", id)
		return
	}
	c.Status(http.StatusNoContent)
}
