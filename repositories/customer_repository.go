package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// CustomerRepository provides data access for customers.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List() ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	err := r.db.Order("id").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Get(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *CustomerRepository) Update(id uint, fields map[string]interface{}) (*models.Customer, error) {
	customer, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return customer, nil
	}
	if err := r.db.Model(customer).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes the customer with their vehicles and orders.
func (r *CustomerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			return err
		}
		if err := deleteOrdersTx(tx, "customer_id", id); err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Vehicle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
}
