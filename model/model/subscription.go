package model

import (
	"time"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusSuspended = "suspended"
	SubscriptionStatusCanceled  = "canceled"
	SubscriptionStatusExpired   = "expired"
)

// Subscription is created only by the provisioning saga. Unique
// payment_id prevents duplicates under redelivered confirmations; a
// payment belongs to exactly one (company, plan) pair, so this also
// bounds one open subscription per provisioning flow.
type Subscription struct {
	ID        string `gorm:"primary_key:true;type:uuid" json:"id"`
	CompanyID string `gorm:"type:uuid;not null;index" json:"company_id"`
	PaymentID string `gorm:"type:uuid;not null;unique_index" json:"payment_id"`
	PlanID    uint64 `gorm:"not null" json:"plan_id"`

	Status string `gorm:"type:varchar(20);not null" json:"status"`

	PeriodStart   time.Time `json:"period_start"`
	PeriodEnd     time.Time `json:"period_end"`
	MonthlyAmount float64   `json:"monthly_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
