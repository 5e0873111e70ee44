package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// ServiceRepository provides data access for services.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List() ([]models.Service, error) {
	services := make([]models.Service, 0)
	err := r.db.Order("id").Find(&services).Error
	return services, err
}

func (r *ServiceRepository) Get(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *ServiceRepository) Update(id uint, fields map[string]interface{}) (*models.Service, error) {
	service, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return service, nil
	}
	if err := r.db.Model(service).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes the service and the order line items that reference it.
func (r *ServiceRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, id).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&models.OrderService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})
}
