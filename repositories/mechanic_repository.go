package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// MechanicRepository provides data access for mechanics.
type MechanicRepository struct {
	db *gorm.DB
}

func NewMechanicRepository(db *gorm.DB) *MechanicRepository {
	return &MechanicRepository{db: db}
}

func (r *MechanicRepository) List() ([]models.Mechanic, error) {
	mechanics := make([]models.Mechanic, 0)
	err := r.db.Order("id").Find(&mechanics).Error
	return mechanics, err
}

func (r *MechanicRepository) Get(id uint) (*models.Mechanic, error) {
	var mechanic models.Mechanic
	if err := r.db.First(&mechanic, id).Error; err != nil {
		return nil, err
	}
	return &mechanic, nil
}

// Available returns active mechanics not currently tied to an open order.
func (r *MechanicRepository) Available() ([]models.Mechanic, error) {
	assigned := r.db.Model(&models.Order{}).
		Select("mechanic_id").
		Where("is_closed = ? AND mechanic_id IS NOT NULL", false)

	mechanics := make([]models.Mechanic, 0)
	err := r.db.Where("is_active = ?", true).
		Where("id NOT IN (?)", assigned).
		Order("id").
		Find(&mechanics).Error
	return mechanics, err
}

func (r *MechanicRepository) Create(mechanic *models.Mechanic) error {
	return r.db.Create(mechanic).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *MechanicRepository) Update(id uint, fields map[string]interface{}) (*models.Mechanic, error) {
	mechanic, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return mechanic, nil
	}
	if err := r.db.Model(mechanic).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes the mechanic; orders referencing them keep running with
// the reference cleared.
func (r *MechanicRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var mechanic models.Mechanic
		if err := tx.First(&mechanic, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).
			Where("mechanic_id = ?", id).
			Update("mechanic_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&mechanic).Error
	})
}
