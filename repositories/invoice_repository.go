package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// InvoiceRepository provides data access for invoices.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) List() ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	err := r.db.Order("id").Find(&invoices).Error
	return invoices, err
}

func (r *InvoiceRepository) Get(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ByOrder returns the invoice for an order, or gorm.ErrRecordNotFound when
// the order has none.
func (r *InvoiceRepository) ByOrder(orderID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.Where("order_id = ?", orderID).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *InvoiceRepository) Update(id uint, fields map[string]interface{}) (*models.Invoice, error) {
	invoice, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return invoice, nil
	}
	if err := r.db.Model(invoice).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// MarkPaid flips the paid flag. It does not reconcile against recorded
// payments.
func (r *InvoiceRepository) MarkPaid(id uint) (*models.Invoice, error) {
	return r.Update(id, map[string]interface{}{"is_paid": true})
}

// Delete removes the invoice together with its payments.
func (r *InvoiceRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Invoice{}, id).Error; err != nil {
			return err
		}
		return deleteInvoiceTx(tx, id)
	})
}
