package models

import "time"

// Order represents a repair order for a customer's vehicle
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"` // foreign key to customers table
	Customer    Customer  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	VehicleID   uint      `gorm:"not null;index" json:"vehicle_id"` // foreign key to vehicles table
	Vehicle     Vehicle   `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"-"`
	MechanicID  *uint     `gorm:"index" json:"mechanic_id"` // nullable, cleared when the mechanic is deleted
	Mechanic    *Mechanic `gorm:"foreignKey:MechanicID;constraint:OnDelete:SET NULL" json:"-"`
	OrderDate   time.Time `gorm:"autoCreateTime" json:"order_date"`
	Description string    `gorm:"type:text" json:"description"`
	IsClosed    bool      `gorm:"not null;default:false" json:"is_closed"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
