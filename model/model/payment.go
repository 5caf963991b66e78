package model

import (
	"encoding/json"
	"time"

	"github.com/jinzhu/gorm/dialects/postgres"
)

// Payment status. pending may move to paid, failed or canceled.
// paid is terminal; only the provider reference can still be attached,
// exactly once.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusCanceled = "canceled"
)

const (
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

type Payment struct {
	ID        string `gorm:"primary_key:true;type:uuid" json:"id"`
	CompanyID string `gorm:"type:uuid;not null;index" json:"company_id"`

	AmountNet   float64 `json:"amount_net"`
	AmountTax   float64 `json:"amount_tax"`
	AmountGross float64 `json:"amount_gross"`

	Status string `gorm:"type:varchar(20);not null" json:"status"`
	Method string `gorm:"type:varchar(20);not null" json:"method"`

	// External provider transaction reference. Nil until the provider
	// confirms the charge; written once, first writer wins.
	ProviderRef *string `gorm:"type:varchar(100)" json:"provider_ref"`

	Snapshot *postgres.Jsonb `json:"snapshot"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentSnapshot captures the plan selection and the linked entity
// ids at intake time. The provisioning saga reads only this snapshot
// plus the workflow record, never re-derives from live rows.
type PaymentSnapshot struct {
	PlanID     uint64   `json:"plan_id"`
	AddOnIDs   []string `json:"add_on_ids,omitempty"`
	CompanyID  string   `json:"company_id"`
	CustomerID string   `json:"customer_id,omitempty"`
	AgentUUID  string   `json:"agent_uuid,omitempty"`

	AmountNet   float64 `json:"amount_net"`
	AmountTax   float64 `json:"amount_tax"`
	AmountGross float64 `json:"amount_gross"`
}

func EncodePaymentSnapshot(snapshot *PaymentSnapshot) (*postgres.Jsonb, error) {
	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	return &postgres.Jsonb{RawMessage: snapshotJson}, nil
}

func (payment *Payment) DecodeSnapshot() (*PaymentSnapshot, error) {
	var snapshot PaymentSnapshot
	if payment.Snapshot == nil {
		return &snapshot, nil
	}

	if err := json.Unmarshal(payment.Snapshot.RawMessage, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// IsValidPaymentStatusTransition - pending is the only non-terminal
// state.
func IsValidPaymentStatusTransition(from, to string) bool {
	if from != PaymentStatusPending {
		return false
	}
	return to == PaymentStatusPaid || to == PaymentStatusFailed || to == PaymentStatusCanceled
}
