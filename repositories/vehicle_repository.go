package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// VehicleRepository provides data access for vehicles.
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List() ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0)
	err := r.db.Order("id").Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) Get(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// ByCustomer returns the vehicles owned by the given customer.
func (r *VehicleRepository) ByCustomer(customerID uint) ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0)
	err := r.db.Where("customer_id = ?", customerID).Order("id").Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *VehicleRepository) Update(id uint, fields map[string]interface{}) (*models.Vehicle, error) {
	vehicle, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return vehicle, nil
	}
	if err := r.db.Model(vehicle).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes the vehicle and the orders that reference it.
func (r *VehicleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, id).Error; err != nil {
			return err
		}
		if err := deleteOrdersTx(tx, "vehicle_id", id); err != nil {
			return err
		}
		return tx.Delete(&vehicle).Error
	})
}
