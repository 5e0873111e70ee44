package models

import "time"

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodOther        PaymentMethod = "other"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodBankTransfer, MethodOther:
		return true
	}
	return false
}

// Payment tracks a payment made against an invoice. Recording a payment
// never flips the invoice's is_paid flag; that is a manual operation.
type Payment struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	InvoiceID     uint          `gorm:"not null;index" json:"invoice_id"` // foreign key to invoices table
	Invoice       Invoice       `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"-"`
	PaymentDate   time.Time     `gorm:"autoCreateTime" json:"payment_date"`
	Amount        float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	Note          string        `gorm:"type:text" json:"note"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
