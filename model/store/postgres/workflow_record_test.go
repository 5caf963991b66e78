package postgres

import (
	"net/http"
	"testing"

	"bizdesk/model/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertWorkflowRecordIdempotent(t *testing.T) {
	store := &Postgres{}
	intake := createTestIntake(t, store, model.StarterPlanID, nil)
	paymentID := intake.Payment.ID

	original, errCode := store.GetWorkflowRecordByPaymentID(paymentID)
	require.Equal(t, http.StatusFound, errCode)

	// A retried intake write for the same payment updates the staged
	// snapshot in place.
	updated, errCode := store.upsertWorkflowRecord(&model.WorkflowRecord{
		PaymentID:   paymentID,
		CompanyID:   original.CompanyID,
		CustomerID:  original.CustomerID,
		AgentUUID:   original.AgentUUID,
		PlanID:      original.PlanID,
		AmountNet:   60,
		AmountTax:   12,
		AmountGross: 72,
	})
	require.Equal(t, http.StatusCreated, errCode)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, 72.0, updated.AmountGross)
	assert.False(t, updated.Processed)
}

func TestMarkWorkflowRecordProcessedOnce(t *testing.T) {
	store := &Postgres{}
	intake := createTestIntake(t, store, model.StarterPlanID, nil)
	paymentID := intake.Payment.ID

	rowsAffected, errCode := store.markWorkflowRecordProcessed(paymentID)
	require.Equal(t, http.StatusAccepted, errCode)
	assert.Equal(t, int64(1), rowsAffected)

	// Exactly one flip.
	rowsAffected, errCode = store.markWorkflowRecordProcessed(paymentID)
	require.Equal(t, http.StatusAccepted, errCode)
	assert.Equal(t, int64(0), rowsAffected)

	// The flag never reverts, not even through the staging upsert.
	record, _ := store.GetWorkflowRecordByPaymentID(paymentID)
	_, errCode = store.upsertWorkflowRecord(&model.WorkflowRecord{
		PaymentID:   paymentID,
		CompanyID:   record.CompanyID,
		PlanID:      record.PlanID,
		AmountNet:   record.AmountNet,
		AmountTax:   record.AmountTax,
		AmountGross: record.AmountGross,
	})
	require.Equal(t, http.StatusCreated, errCode)

	record, _ = store.GetWorkflowRecordByPaymentID(paymentID)
	assert.True(t, record.Processed)
}
