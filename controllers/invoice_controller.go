package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateInvoiceRequest represents the request body for creating an invoice.
// The total amount is supplied by the caller; it is not derived from the
// order's line items.
type CreateInvoiceRequest struct {
	OrderID     uint      `json:"order_id" binding:"required"`
	DueDate     time.Time `json:"due_date" binding:"required"`
	TotalAmount *float64  `json:"total_amount" binding:"required,gte=0"`
}

// UpdateInvoiceRequest represents the request body for updating an invoice
type UpdateInvoiceRequest struct {
	DueDate     *time.Time `json:"due_date"`
	TotalAmount *float64   `json:"total_amount" binding:"omitempty,gte=0"`
	IsPaid      *bool      `json:"is_paid"`
}

// ListInvoices handles GET /invoices
func ListInvoices(c *gin.Context) {
	repo := repositories.NewInvoiceRepository(config.GetDB())
	invoices, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice handles GET /invoices/:id
func GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewInvoiceRepository(config.GetDB())
	invoice, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Invoice", id)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// GetInvoiceByOrder handles GET /invoices/order/:id - the order's invoice,
// or null when the order has none
func GetInvoiceByOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewOrderRepository(db).Get(orderID); err != nil {
		respondGetError(c, err, "Order", orderID)
		return
	}

	invoice, err := repositories.NewInvoiceRepository(db).ByOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		serverError(c, "Failed to load invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice handles POST /invoices; an order can carry only one invoice
func CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewOrderRepository(db).Get(req.OrderID); err != nil {
		respondGetError(c, err, "Order", req.OrderID)
		return
	}

	repo := repositories.NewInvoiceRepository(db)
	if _, err := repo.ByOrder(req.OrderID); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf("Order %d already has an invoice", req.OrderID),
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		serverError(c, "Failed to check existing invoice")
		return
	}

	invoice := models.Invoice{
		OrderID:     req.OrderID,
		DueDate:     req.DueDate,
		TotalAmount: *req.TotalAmount,
	}
	if err := repo.Create(&invoice); err != nil {
		respondWriteError(c, err, fmt.Sprintf("Order %d already has an invoice", req.OrderID))
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice handles PUT /invoices/:id with partial-update semantics
func UpdateInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.TotalAmount != nil {
		updates["total_amount"] = *req.TotalAmount
	}
	if req.IsPaid != nil {
		updates["is_paid"] = *req.IsPaid
	}

	repo := repositories.NewInvoiceRepository(config.GetDB())
	invoice, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Invoice", id, "Invoice update failed")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// MarkInvoicePaid handles PUT /invoices/:id/mark_paid. It is a manual flag
// flip; recorded payments are not reconciled against the total.
func MarkInvoicePaid(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewInvoiceRepository(config.GetDB())
	invoice, err := repo.MarkPaid(id)
	if err != nil {
		respondUpdateError(c, err, "Invoice", id, "Invoice update failed")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice handles DELETE /invoices/:id, removing its payments with it
func DeleteInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewInvoiceRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Invoice", id)
		return
	}
	c.Status(http.StatusNoContent)
}
