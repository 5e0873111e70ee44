package models

// Service represents a service offered by the workshop
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
