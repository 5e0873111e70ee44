package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// OrderRepository provides data access for repair orders.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List() ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *OrderRepository) Update(id uint, fields map[string]interface{}) (*models.Order, error) {
	order, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return order, nil
	}
	if err := r.db.Model(order).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes the order with its status history, line items and invoice.
func (r *OrderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Order{}, id).Error; err != nil {
			return err
		}
		return deleteOrderTx(tx, id)
	})
}
