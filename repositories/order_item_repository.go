package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// OrderServiceRepository provides data access for order service line items.
type OrderServiceRepository struct {
	db *gorm.DB
}

func NewOrderServiceRepository(db *gorm.DB) *OrderServiceRepository {
	return &OrderServiceRepository{db: db}
}

func (r *OrderServiceRepository) List() ([]models.OrderService, error) {
	items := make([]models.OrderService, 0)
	err := r.db.Order("id").Find(&items).Error
	return items, err
}

func (r *OrderServiceRepository) Get(id uint) (*models.OrderService, error) {
	var item models.OrderService
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderServiceRepository) Create(item *models.OrderService) error {
	return r.db.Create(item).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *OrderServiceRepository) Update(id uint, fields map[string]interface{}) (*models.OrderService, error) {
	item, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return item, nil
	}
	if err := r.db.Model(item).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *OrderServiceRepository) Delete(id uint) error {
	var item models.OrderService
	if err := r.db.First(&item, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&item).Error
}

// OrderPartRepository provides data access for order part line items.
type OrderPartRepository struct {
	db *gorm.DB
}

func NewOrderPartRepository(db *gorm.DB) *OrderPartRepository {
	return &OrderPartRepository{db: db}
}

func (r *OrderPartRepository) List() ([]models.OrderPart, error) {
	items := make([]models.OrderPart, 0)
	err := r.db.Order("id").Find(&items).Error
	return items, err
}

func (r *OrderPartRepository) Get(id uint) (*models.OrderPart, error) {
	var item models.OrderPart
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderPartRepository) Create(item *models.OrderPart) error {
	return r.db.Create(item).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *OrderPartRepository) Update(id uint, fields map[string]interface{}) (*models.OrderPart, error) {
	item, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return item, nil
	}
	if err := r.db.Model(item).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *OrderPartRepository) Delete(id uint) error {
	var item models.OrderPart
	if err := r.db.First(&item, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&item).Error
}
