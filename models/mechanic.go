package models

import "time"

// Mechanic represents a shop employee who works on orders
type Mechanic struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	FirstName string     `gorm:"size:100;not null" json:"first_name"`
	LastName  string     `gorm:"size:100;not null" json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `gorm:"size:20" json:"phone"`
	HireDate  *time.Time `json:"hire_date"`
	IsActive  bool       `gorm:"not null" json:"is_active"` // defaults to true at the boundary
}

// TableName specifies the table name for the Mechanic model
func (Mechanic) TableName() string {
	return "mechanics"
}
