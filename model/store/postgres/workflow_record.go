package postgres

import (
	"net/http"
	"time"

	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

// upsertWorkflowRecord - Staging write of the intake flow. Keyed by
// payment id; a retried intake call for the same payment updates the
// snapshot in place instead of creating a duplicate staging row. The
// processed flag is deliberately not part of the update set, it never
// reverts.
func (store *Postgres) upsertWorkflowRecord(record *model.WorkflowRecord) (*model.WorkflowRecord, int) {
	if record == nil || record.PaymentID == "" || record.CompanyID == "" {
		return nil, http.StatusBadRequest
	}

	if record.ID == "" {
		record.ID = U.GetUUID()
	}

	now := U.TimeNowZ()
	db := C.GetServices().Db
	err := db.Exec(`INSERT INTO workflow_records
		(id, payment_id, company_id, customer_id, agent_uuid, plan_id,
		 amount_net, amount_tax, amount_gross, send_welcome_email, processed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, false, ?, ?)
		ON CONFLICT (payment_id) DO UPDATE SET
		 company_id = excluded.company_id,
		 customer_id = excluded.customer_id,
		 agent_uuid = excluded.agent_uuid,
		 plan_id = excluded.plan_id,
		 amount_net = excluded.amount_net,
		 amount_tax = excluded.amount_tax,
		 amount_gross = excluded.amount_gross,
		 send_welcome_email = excluded.send_welcome_email,
		 updated_at = excluded.updated_at`,
		record.ID, record.PaymentID, record.CompanyID, record.CustomerID, record.AgentUUID,
		record.PlanID, record.AmountNet, record.AmountTax, record.AmountGross,
		record.SendWelcomeEmail, now, now).Error
	if err != nil {
		log.WithError(err).WithField("payment_id", record.PaymentID).
			Error("upsertWorkflowRecord Failed")
		return nil, http.StatusInternalServerError
	}

	return store.getWorkflowRecordByPaymentID(record.PaymentID, http.StatusCreated)
}

func (store *Postgres) getWorkflowRecordByPaymentID(paymentID string, foundCode int) (*model.WorkflowRecord, int) {
	db := C.GetServices().Db
	var record model.WorkflowRecord
	if err := db.Limit(1).Where("payment_id = ?", paymentID).Find(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).WithField("payment_id", paymentID).
			Error("getWorkflowRecordByPaymentID Failed")
		return nil, http.StatusInternalServerError
	}

	return &record, foundCode
}

func (store *Postgres) GetWorkflowRecordByPaymentID(paymentID string) (*model.WorkflowRecord, int) {
	if paymentID == "" {
		return nil, http.StatusBadRequest
	}
	return store.getWorkflowRecordByPaymentID(paymentID, http.StatusFound)
}

// markWorkflowRecordProcessed - Commit point of the provisioning saga.
// Conditional on processed = false so the flip happens exactly once.
func (store *Postgres) markWorkflowRecordProcessed(paymentID string) (int64, int) {
	if paymentID == "" {
		return 0, http.StatusBadRequest
	}

	db := C.GetServices().Db
	dbx := db.Model(&model.WorkflowRecord{}).
		Where("payment_id = ? AND processed = false", paymentID).
		Update("processed", true)
	if dbx.Error != nil {
		log.WithError(dbx.Error).WithField("payment_id", paymentID).
			Error("markWorkflowRecordProcessed Failed")
		return 0, http.StatusInternalServerError
	}

	return dbx.RowsAffected, http.StatusAccepted
}

// GetUnprocessedWorkflowRecords - Retry queue of the provisioning
// sweep: paid payments whose saga never reached the commit point.
func (store *Postgres) GetUnprocessedWorkflowRecords(olderThan time.Duration) ([]model.WorkflowRecord, int) {
	db := C.GetServices().Db

	records := make([]model.WorkflowRecord, 0)
	err := db.Joins("JOIN payments ON payments.id = workflow_records.payment_id").
		Where("workflow_records.processed = false AND payments.status = ? AND workflow_records.updated_at < ?",
			model.PaymentStatusPaid, U.TimeNowZ().Add(-olderThan)).
		Find(&records).Error
	if err != nil {
		log.WithError(err).Error("GetUnprocessedWorkflowRecords Failed")
		return nil, http.StatusInternalServerError
	}

	return records, http.StatusFound
}
