package repositories

import (
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/models"
)

// NotificationRepository provides data access for notifications.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) List() ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	err := r.db.Order("id").Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) Get(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// Update applies only the supplied fields and returns the updated row.
func (r *NotificationRepository) Update(id uint, fields map[string]interface{}) (*models.Notification, error) {
	notification, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return notification, nil
	}
	if err := r.db.Model(notification).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *NotificationRepository) Delete(id uint) error {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&notification).Error
}
