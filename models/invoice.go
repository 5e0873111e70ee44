package models

import "time"

// Invoice represents the invoice generated for an order. An order has at
// most one invoice; the unique index on order_id backs that up.
type Invoice struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"uniqueIndex;not null" json:"order_id"` // one-to-one with orders
	Order       Order     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	IssueDate   time.Time `gorm:"autoCreateTime" json:"issue_date"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	TotalAmount float64   `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	IsPaid      bool      `gorm:"not null;default:false" json:"is_paid"`
}

// TableName specifies the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
