package models

import "time"

// Customer represents a customer of the shop
type Customer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"size:200;not null" json:"first_name"`
	LastName   string    `gorm:"size:200;not null" json:"last_name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone      string    `gorm:"size:30" json:"phone"`
	Address    string    `gorm:"size:200" json:"address"`
	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
