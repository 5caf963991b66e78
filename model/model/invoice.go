package model

import (
	"time"
)

const (
	InvoiceStatusPaid = "paid"
)

// Invoice is created only by the provisioning saga. The unique
// payment_id column is the at-most-one-invoice-per-payment guarantee.
type Invoice struct {
	ID        string `gorm:"primary_key:true;type:uuid" json:"id"`
	CompanyID string `gorm:"type:uuid;not null;index" json:"company_id"`
	PaymentID string `gorm:"type:uuid;not null;unique_index" json:"payment_id"`

	Number string `gorm:"type:varchar(50);not null;unique_index" json:"number"`

	AmountNet   float64 `json:"amount_net"`
	AmountTax   float64 `json:"amount_tax"`
	AmountGross float64 `json:"amount_gross"`

	Status string `gorm:"type:varchar(20);not null" json:"status"`

	IssuedAt  time.Time `json:"issued_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
