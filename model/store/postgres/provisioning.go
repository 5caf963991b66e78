package postgres

import (
	"net/http"

	"bizdesk/model/model"
	"bizdesk/notification"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func logProvisioningStepFailure(paymentID, step string, errCode int, err error) {
	if err == nil {
		err = errors.Errorf("step returned code %d", errCode)
	}
	log.WithFields(log.Fields{
		"payment_id": paymentID,
		"step":       step,
		"err_code":   errCode,
	}).WithError(errors.Wrap(err, "provisioning step failed")).
		Error("Provisioning saga step failed.")
}

// readProvisioningResult re-reads the derived ids of an already
// finalized saga. Used on idempotent replays.
func (store *Postgres) readProvisioningResult(record *model.WorkflowRecord) (*model.ProvisioningResult, int) {
	result := &model.ProvisioningResult{}

	invoice, errCode := store.GetInvoiceByPaymentID(record.PaymentID)
	if errCode != http.StatusFound {
		logProvisioningStepFailure(record.PaymentID, model.ProvisioningStepInvoice, errCode,
			errors.New("invoice missing on finalized workflow record"))
		return nil, http.StatusInternalServerError
	}
	result.InvoiceID = invoice.ID

	subscription, errCode := store.GetSubscriptionByPaymentID(record.PaymentID)
	if errCode != http.StatusFound {
		logProvisioningStepFailure(record.PaymentID, model.ProvisioningStepSubscription, errCode,
			errors.New("subscription missing on finalized workflow record"))
		return nil, http.StatusInternalServerError
	}
	result.SubscriptionID = subscription.ID

	if record.CustomerID != nil {
		if account, errCode := store.GetMemberAccountByCustomerID(*record.CustomerID); errCode == http.StatusFound {
			result.MemberAccountID = account.ID
		}
	}

	return result, http.StatusOK
}

// RunProvisioning - The saga executor. Creates invoice, subscription
// and member account for a paid payment, with at-most-once guarantees
// per payment. Every creative step is insert-or-reuse, so re-entry at
// any point converges; the processed flag flip is the commit point.
func (store *Postgres) RunProvisioning(paymentID string) (*model.ProvisioningResult, int) {
	if paymentID == "" {
		return nil, http.StatusBadRequest
	}

	logCtx := log.WithField("payment_id", paymentID)

	payment, errCode := store.GetPayment(paymentID)
	if errCode == http.StatusNotFound {
		return nil, http.StatusNotFound
	}
	if errCode != http.StatusFound {
		logProvisioningStepFailure(paymentID, model.ProvisioningStepLoadPayment, errCode, nil)
		return nil, errCode
	}
	if payment.Status != model.PaymentStatusPaid {
		// Guards against being invoked before confirmation.
		logCtx.WithField("status", payment.Status).Error("Provisioning invoked on non-paid payment.")
		return nil, http.StatusPreconditionFailed
	}

	record, errCode := store.GetWorkflowRecordByPaymentID(paymentID)
	if errCode == http.StatusNotFound {
		// Data integrity fault: a paid payment always has a staged
		// workflow record. Needs operator attention, not retries.
		logCtx.Error("Workflow record missing for paid payment. Escalate to operators.")
		return nil, http.StatusInternalServerError
	}
	if errCode != http.StatusFound {
		logProvisioningStepFailure(paymentID, model.ProvisioningStepLoadWorkflow, errCode, nil)
		return nil, errCode
	}

	if record.Processed {
		return store.readProvisioningResult(record)
	}

	company, errCode := store.GetCompany(record.CompanyID)
	if errCode != http.StatusFound {
		logProvisioningStepFailure(paymentID, model.ProvisioningStepLoadCompany, errCode, nil)
		return nil, http.StatusFailedDependency
	}
	if company.PaymentStatus != model.CompanyPaymentStatusPending {
		// A concurrent run finalized the company between our record
		// read and now. The derived rows exist; close the record.
		store.markWorkflowRecordProcessed(paymentID)
		return store.readProvisioningResult(record)
	}

	invoice, errCode := store.createInvoiceForPayment(payment, record)
	if errCode != http.StatusCreated && errCode != http.StatusFound {
		logProvisioningStepFailure(paymentID, model.ProvisioningStepInvoice, errCode, nil)
		return nil, http.StatusFailedDependency
	}

	subscription, errCode := store.createSubscriptionForPayment(payment, record)
	if errCode != http.StatusCreated && errCode != http.StatusFound {
		logProvisioningStepFailure(paymentID, model.ProvisioningStepSubscription, errCode, nil)
		return nil, http.StatusFailedDependency
	}

	result := &model.ProvisioningResult{
		InvoiceID:      invoice.ID,
		SubscriptionID: subscription.ID,
	}

	if record.CustomerID != nil && record.AgentUUID != nil {
		account, errCode := store.createOrReuseMemberAccount(*record.CustomerID, record.CompanyID, *record.AgentUUID)
		if errCode != http.StatusCreated && errCode != http.StatusFound {
			logProvisioningStepFailure(paymentID, model.ProvisioningStepMemberAccount, errCode, nil)
			return nil, http.StatusFailedDependency
		}
		result.MemberAccountID = account.ID
	}

	if _, errCode := store.updateCompanyPaymentStatusIfPending(record.CompanyID,
		model.CompanyPaymentStatusPaid); errCode != http.StatusAccepted {
		logProvisioningStepFailure(paymentID, model.ProvisioningStepCompanyStatus, errCode, nil)
		return nil, http.StatusFailedDependency
	}

	rowsAffected, errCode := store.markWorkflowRecordProcessed(paymentID)
	if errCode != http.StatusAccepted {
		logProvisioningStepFailure(paymentID, model.ProvisioningStepMarkProcessed, errCode, nil)
		return nil, http.StatusFailedDependency
	}

	// Notifications go out once, after the commit point, and never
	// fail the saga.
	if rowsAffected > 0 && record.SendWelcomeEmail {
		store.dispatchProvisioningNotifications(record, company, invoice)
	}

	return result, http.StatusOK
}

func (store *Postgres) dispatchProvisioningNotifications(record *model.WorkflowRecord,
	company *model.Company, invoice *model.Invoice) {

	var customer *model.Customer
	var agent *model.Agent

	if record.CustomerID != nil {
		customer, _ = store.GetCustomer(*record.CustomerID)
	}
	if record.AgentUUID != nil {
		agent, _ = store.GetAgentByUUID(*record.AgentUUID)
	}

	go notification.DispatchProvisioned(company, customer, agent, invoice)
}
