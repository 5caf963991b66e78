package model

import (
	"time"
)

// WorkflowRecord is the durable staging row of the provisioning saga.
// Exactly one per payment (unique payment_id). It snapshots every id
// the saga needs so confirmation never depends on possibly stale
// foreign rows. processed flips false to true exactly once and never
// reverts; rows with processed = false and a paid payment are the
// retry queue.
type WorkflowRecord struct {
	ID        string `gorm:"primary_key:true;type:uuid" json:"id"`
	PaymentID string `gorm:"type:uuid;not null;unique_index" json:"payment_id"`

	CompanyID  string  `gorm:"type:uuid;not null" json:"company_id"`
	CustomerID *string `gorm:"type:uuid" json:"customer_id"`
	AgentUUID  *string `gorm:"type:uuid" json:"agent_uuid"`
	PlanID     uint64  `gorm:"not null" json:"plan_id"`

	AmountNet   float64 `json:"amount_net"`
	AmountTax   float64 `json:"amount_tax"`
	AmountGross float64 `json:"amount_gross"`

	SendWelcomeEmail bool `json:"send_welcome_email"`

	Processed bool `gorm:"not null;default:false" json:"processed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
