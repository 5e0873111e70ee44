package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// Cascade deletes run in application code inside a single transaction so the
// behavior is identical across backends regardless of whether the engine
// enforces foreign-key actions.

// deleteOrderTx removes an order together with its status history, line
// items and invoice.
func deleteOrderTx(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderStatus{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderService{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderPart{}).Error; err != nil {
		return err
	}

	var invoice models.Invoice
	err := tx.Where("order_id = ?", orderID).First(&invoice).Error
	switch {
	case err == nil:
		if err := deleteInvoiceTx(tx, invoice.ID); err != nil {
			return err
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	return tx.Delete(&models.Order{}, orderID).Error
}

// deleteInvoiceTx removes an invoice together with its payments.
func deleteInvoiceTx(tx *gorm.DB, invoiceID uint) error {
	if err := tx.Where("invoice_id = ?", invoiceID).Delete(&models.Payment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Invoice{}, invoiceID).Error
}

// deleteOrdersTx cascades every order matched by the given column value.
func deleteOrdersTx(tx *gorm.DB, column string, value uint) error {
	var orders []models.Order
	if err := tx.Where(column+" = ?", value).Find(&orders).Error; err != nil {
		return err
	}
	for _, order := range orders {
		if err := deleteOrderTx(tx, order.ID); err != nil {
			return err
		}
	}
	return nil
}
