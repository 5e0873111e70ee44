package repositories

import (
	"strings"

	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// PartRepository provides data access for parts.
type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

func (r *PartRepository) List() ([]models.Part, error) {
	parts := make([]models.Part, 0)
	err := r.db.Order("id").Find(&parts).Error
	return parts, err
}

func (r *PartRepository) Get(id uint) (*models.Part, error) {
	var part models.Part
	if err := r.db.First(&part, id).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

// Search matches a case-insensitive substring against name or part number.
func (r *PartRepository) Search(query string) ([]models.Part, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	parts := make([]models.Part, 0)
	err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(part_number) LIKE ?", pattern, pattern).
		Order("id").
		Find(&parts).Error
	return parts, err
}

func (r *PartRepository) Create(part *models.Part) error {
	return r.db.Create(part).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *PartRepository) Update(id uint, fields map[string]interface{}) (*models.Part, error) {
	part, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return part, nil
	}
	if err := r.db.Model(part).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes the part and the order line items that reference it.
func (r *PartRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var part models.Part
		if err := tx.First(&part, id).Error; err != nil {
			return err
		}
		if err := tx.Where("part_id = ?", id).Delete(&models.OrderPart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&part).Error
	})
}
