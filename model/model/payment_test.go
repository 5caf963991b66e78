package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentSnapshotRoundTrip(t *testing.T) {
	snapshot := &PaymentSnapshot{
		PlanID:      StarterPlanID,
		AddOnIDs:    []string{"extra-storage-monthly"},
		CompanyID:   "7f1a3cde-8d7e-4f8e-9f35-0f6f4a5f2b11",
		CustomerID:  "b2e9c7aa-5a44-4a36-9a7e-3f2b1c4d5e6f",
		AgentUUID:   "c3d1e2f3-a4b5-4c6d-8e7f-9a0b1c2d3e4f",
		AmountNet:   60,
		AmountTax:   12,
		AmountGross: 72,
	}

	encoded, err := EncodePaymentSnapshot(snapshot)
	assert.Nil(t, err)
	assert.NotNil(t, encoded)

	payment := Payment{Snapshot: encoded}
	decoded, err := payment.DecodeSnapshot()
	assert.Nil(t, err)
	assert.Equal(t, snapshot, decoded)
}

func TestDecodeSnapshotWithoutSnapshot(t *testing.T) {
	payment := Payment{}
	decoded, err := payment.DecodeSnapshot()
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), decoded.PlanID)
}

func TestIsValidPaymentStatusTransition(t *testing.T) {
	assert.True(t, IsValidPaymentStatusTransition(PaymentStatusPending, PaymentStatusPaid))
	assert.True(t, IsValidPaymentStatusTransition(PaymentStatusPending, PaymentStatusFailed))
	assert.True(t, IsValidPaymentStatusTransition(PaymentStatusPending, PaymentStatusCanceled))

	// paid is terminal.
	assert.False(t, IsValidPaymentStatusTransition(PaymentStatusPaid, PaymentStatusPending))
	assert.False(t, IsValidPaymentStatusTransition(PaymentStatusPaid, PaymentStatusCanceled))
	assert.False(t, IsValidPaymentStatusTransition(PaymentStatusFailed, PaymentStatusPaid))
}
