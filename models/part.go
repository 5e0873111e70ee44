package models

// Part represents a part kept in stock
type Part struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"size:100;not null" json:"name"`
	PartNumber    string  `gorm:"size:50;uniqueIndex;not null" json:"part_number"`
	Description   string  `gorm:"type:text" json:"description"`
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int     `gorm:"not null;default:0" json:"stock_quantity"`
}

// TableName specifies the table name for the Part model
func (Part) TableName() string {
	return "parts"
}
