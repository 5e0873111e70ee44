package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// PaymentRepository provides data access for payments.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) List() ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	err := r.db.Order("id").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) Get(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *PaymentRepository) Update(id uint, fields map[string]interface{}) (*models.Payment, error) {
	payment, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return payment, nil
	}
	if err := r.db.Model(payment).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *PaymentRepository) Delete(id uint) error {
	var payment models.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&payment).Error
}
