package models

// OrderService links an order with a provided service and tracks the quantity
type OrderService struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"` // foreign key to orders table
	Order     Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	ServiceID uint    `gorm:"not null;index" json:"service_id"` // foreign key to services table
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"-"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}

// TableName specifies the table name for the OrderService model
func (OrderService) TableName() string {
	return "order_services"
}
