package model

import (
	"time"
)

// Company payment status. none_required companies never enter the
// provisioning workflow. pending flips to paid only through the
// provisioning saga.
const (
	CompanyPaymentStatusNoneRequired = "none_required"
	CompanyPaymentStatusPending      = "pending"
	CompanyPaymentStatusPaid         = "paid"
)

type Company struct {
	ID        string `gorm:"primary_key:true;type:uuid" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	LegalName string `gorm:"type:varchar(255)" json:"legal_name"`

	// Agent who created the company through the intake form.
	OwnerAgentUUID string `gorm:"type:uuid;not null" json:"owner_agent_uuid"`

	PaymentStatus string `gorm:"type:varchar(20);not null" json:"payment_status"`

	// Provider-side billing customer id. Set best effort at intake
	// when the billing provider integration is enabled.
	BillingCustomerID string `gorm:"type:varchar(100)" json:"billing_customer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyIntakeParams - Input of the intake flow. Company is required,
// everything else optional.
type CompanyIntakeParams struct {
	Company          *Company
	Customer         *Customer
	CustomerPassword string
	PlanID           uint64
	AddOnIDs         []string

	CreatePortalAdmin bool
	SendWelcomeEmail  bool
}

// CompanyIntakeResult - Created rows of a single intake call. Payment
// and AmountDue are zero when no plan was selected.
type CompanyIntakeResult struct {
	Company   *Company  `json:"company"`
	Customer  *Customer `json:"customer,omitempty"`
	Payment   *Payment  `json:"payment,omitempty"`
	AmountDue float64   `json:"amount_due"`
}
