package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreatePaymentRequest represents the request body for recording a payment.
// Recording a payment never marks the invoice paid; that stays a manual
// operation.
type CreatePaymentRequest struct {
	InvoiceID     uint                 `json:"invoice_id" binding:"required"`
	Amount        *float64             `json:"amount" binding:"required,gte=0"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	Note          string               `json:"note"`
}

// UpdatePaymentRequest represents the request body for updating a payment
type UpdatePaymentRequest struct {
	Amount        *float64              `json:"amount" binding:"omitempty,gte=0"`
	PaymentMethod *models.PaymentMethod `json:"payment_method"`
	Note          *string               `json:"note"`
}

// ListPayments handles GET /payments
func ListPayments(c *gin.Context) {
	repo := repositories.NewPaymentRepository(config.GetDB())
	payments, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetPayment handles GET /payments/:id
func GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewPaymentRepository(config.GetDB())
	payment, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Payment", id)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// CreatePayment handles POST /payments; the invoice must exist
func CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	if !req.PaymentMethod.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Unknown payment method: " + string(req.PaymentMethod),
		})
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewInvoiceRepository(db).Get(req.InvoiceID); err != nil {
		respondGetError(c, err, "Invoice", req.InvoiceID)
		return
	}

	payment := models.Payment{
		InvoiceID:     req.InvoiceID,
		Amount:        *req.Amount,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	}
	if err := repositories.NewPaymentRepository(db).Create(&payment); err != nil {
		serverError(c, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// UpdatePayment handles PUT /payments/:id with partial-update semantics
func UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.PaymentMethod != nil {
		if !req.PaymentMethod.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": "Unknown payment method: " + string(*req.PaymentMethod),
			})
			return
		}
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}

	repo := repositories.NewPaymentRepository(config.GetDB())
	payment, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Payment", id, "Payment update failed")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// DeletePayment handles DELETE /payments/:id
func DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewPaymentRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Payment", id)
		return
	}
	c.Status(http.StatusNoContent)
}
