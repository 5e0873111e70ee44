package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// OrderStatusRepository provides data access for order status history.
// Creating a status appends to the history; existing rows are only touched
// through the explicit update operation (the admin override path).
type OrderStatusRepository struct {
	db *gorm.DB
}

func NewOrderStatusRepository(db *gorm.DB) *OrderStatusRepository {
	return &OrderStatusRepository{db: db}
}

func (r *OrderStatusRepository) List() ([]models.OrderStatus, error) {
	statuses := make([]models.OrderStatus, 0)
	err := r.db.Order("id").Find(&statuses).Error
	return statuses, err
}

func (r *OrderStatusRepository) Get(id uint) (*models.OrderStatus, error) {
	var status models.OrderStatus
	if err := r.db.First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// ByOrder returns the status history of an order, oldest first.
func (r *OrderStatusRepository) ByOrder(orderID uint) ([]models.OrderStatus, error) {
	statuses := make([]models.OrderStatus, 0)
	err := r.db.Where("order_id = ?", orderID).Order("id").Find(&statuses).Error
	return statuses, err
}

func (r *OrderStatusRepository) Create(status *models.OrderStatus) error {
	return r.db.Create(status).Error
}

// Update applies only the supplied fields and returns the updated row.
// The creation timestamp is never part of the update set.
func (r *OrderStatusRepository) Update(id uint, fields map[string]interface{}) (*models.OrderStatus, error) {
	status, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return status, nil
	}
	if err := r.db.Model(status).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *OrderStatusRepository) Delete(id uint) error {
	var status models.OrderStatus
	if err := r.db.First(&status, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&status).Error
}
