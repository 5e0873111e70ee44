package models

import "time"

// Status is an order status value. The history of an order is the ordered
// set of OrderStatus rows pointing at it; rows are appended, never rewritten.
type Status string

const (
	StatusReceived        Status = "received"
	StatusInProgress      Status = "in_progress"
	StatusWaitingForParts Status = "waiting_for_parts"
	StatusCompleted       Status = "completed"
	StatusDelivered       Status = "delivered"
	StatusCancelled       Status = "cancelled"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusReceived, StatusInProgress, StatusWaitingForParts,
		StatusCompleted, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderStatus tracks the status of an order over time
type OrderStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"` // foreign key to orders table
	Order     Order     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Status    Status    `gorm:"size:50;not null" json:"status"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	Note      string    `gorm:"type:text" json:"note"`
}

// TableName specifies the table name for the OrderStatus model
func (OrderStatus) TableName() string {
	return "order_statuses"
}
