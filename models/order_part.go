package models

// OrderPart tracks which parts were used for an order and in what quantity
type OrderPart struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	OrderID  uint  `gorm:"not null;index" json:"order_id"` // foreign key to orders table
	Order    Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	PartID   uint  `gorm:"not null;index" json:"part_id"` // foreign key to parts table
	Part     Part  `gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE" json:"-"`
	Quantity int   `gorm:"not null;default:1" json:"quantity"`
}

// TableName specifies the table name for the OrderPart model
func (OrderPart) TableName() string {
	return "order_parts"
}
