package models

// Vehicle represents a customer's vehicle
type Vehicle struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Brand      string   `gorm:"size:100;not null" json:"brand"`
	Model      string   `gorm:"size:150;not null" json:"model"`
	Year       int      `gorm:"not null" json:"year"`
	VIN        string   `gorm:"column:vin;size:17;uniqueIndex;not null" json:"vin"` // vehicle identification number
	CustomerID uint     `gorm:"not null;index" json:"customer_id"`                  // foreign key to customers table
	Customer   Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
