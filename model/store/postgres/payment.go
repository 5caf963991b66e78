package postgres

import (
	"net/http"

	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

func (store *Postgres) createPayment(companyID string, net, tax, gross float64,
	method string, snapshot *model.PaymentSnapshot) (*model.Payment, int) {

	if companyID == "" {
		return nil, http.StatusBadRequest
	}

	encodedSnapshot, err := model.EncodePaymentSnapshot(snapshot)
	if err != nil {
		log.WithError(err).Error("createPayment Failed. Snapshot encode error.")
		return nil, http.StatusInternalServerError
	}

	payment := &model.Payment{
		ID:          U.GetUUID(),
		CompanyID:   companyID,
		AmountNet:   net,
		AmountTax:   tax,
		AmountGross: gross,
		Status:      model.PaymentStatusPending,
		Method:      method,
		Snapshot:    encodedSnapshot,
	}

	db := C.GetServices().Db
	if err := db.Create(payment).Error; err != nil {
		log.WithError(err).Error("createPayment Failed")
		return nil, http.StatusInternalServerError
	}

	return payment, http.StatusCreated
}

func (store *Postgres) GetPayment(id string) (*model.Payment, int) {
	if id == "" {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	var payment model.Payment
	if err := db.Limit(1).Where("id = ?", id).Find(&payment).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetPayment Failed")
		return nil, http.StatusInternalServerError
	}

	return &payment, http.StatusFound
}

// AttachPaymentProviderReference - First writer wins. A second,
// distinct reference arriving for the same payment is logged and
// ignored; provider redeliveries sometimes rewrite transaction ids
// and must stay harmless.
func (store *Postgres) AttachPaymentProviderReference(paymentID, providerRef string) int {
	if paymentID == "" || providerRef == "" {
		return http.StatusBadRequest
	}

	db := C.GetServices().Db
	dbx := db.Model(&model.Payment{}).
		Where("id = ? AND provider_ref IS NULL", paymentID).
		Update("provider_ref", providerRef)
	if dbx.Error != nil {
		log.WithError(dbx.Error).WithField("payment_id", paymentID).
			Error("AttachPaymentProviderReference Failed")
		return http.StatusInternalServerError
	}
	if dbx.RowsAffected > 0 {
		return http.StatusAccepted
	}

	payment, errCode := store.GetPayment(paymentID)
	if errCode != http.StatusFound {
		return errCode
	}
	if payment.ProviderRef != nil && *payment.ProviderRef != providerRef {
		log.WithFields(log.Fields{
			"payment_id":   paymentID,
			"existing_ref": *payment.ProviderRef,
			"incoming_ref": providerRef,
		}).Error("Ignored distinct provider reference for already referenced payment.")
	}

	return http.StatusAccepted
}

// markPaymentPaid - Compare-and-swap on status. Exactly one caller
// observes the pending to paid transition; everyone else sees zero
// rows affected and falls back to the idempotent replay path.
func (store *Postgres) markPaymentPaid(paymentID string) (int64, int) {
	if paymentID == "" {
		return 0, http.StatusBadRequest
	}

	db := C.GetServices().Db
	dbx := db.Model(&model.Payment{}).
		Where("id = ? AND status = ?", paymentID, model.PaymentStatusPending).
		Update("status", model.PaymentStatusPaid)
	if dbx.Error != nil {
		log.WithError(dbx.Error).WithField("payment_id", paymentID).Error("markPaymentPaid Failed")
		return 0, http.StatusInternalServerError
	}

	return dbx.RowsAffected, http.StatusAccepted
}

// ConfirmPayment - Entry point once a charge is captured, either by an
// operator action or a provider callback. Safe to call any number of
// times with the same payment id.
func (store *Postgres) ConfirmPayment(paymentID, providerRef string) (*model.ConfirmPaymentResponse, int) {
	logCtx := log.WithField("payment_id", paymentID)

	payment, errCode := store.GetPayment(paymentID)
	if errCode == http.StatusNotFound {
		return &model.ConfirmPaymentResponse{Error: "payment_not_found"}, http.StatusNotFound
	}
	if errCode != http.StatusFound {
		return &model.ConfirmPaymentResponse{Error: "payment_lookup_failed"}, errCode
	}

	if payment.Status == model.PaymentStatusFailed || payment.Status == model.PaymentStatusCanceled {
		logCtx.WithField("status", payment.Status).Error("Confirmation rejected for terminal non-paid payment.")
		return &model.ConfirmPaymentResponse{Error: "payment_not_pending"}, http.StatusConflict
	}

	if providerRef != "" {
		if errCode := store.AttachPaymentProviderReference(paymentID, providerRef); errCode != http.StatusAccepted {
			return &model.ConfirmPaymentResponse{Error: "provider_ref_attach_failed"}, errCode
		}
	}

	alreadyConfirmed := payment.Status == model.PaymentStatusPaid
	if !alreadyConfirmed {
		rowsAffected, errCode := store.markPaymentPaid(paymentID)
		if errCode != http.StatusAccepted {
			return &model.ConfirmPaymentResponse{Error: "payment_update_failed"}, errCode
		}
		if rowsAffected == 0 {
			// Lost the transition race. The payment is paid by now;
			// provisioning below replays idempotently.
			alreadyConfirmed = true
		}
	}

	result, errCode := store.RunProvisioning(paymentID)
	if errCode != http.StatusOK {
		// The payment stays paid - the financial fact is never
		// reverted. The workflow record stays unprocessed, so a
		// retried confirmation finishes the job.
		logCtx.WithField("err_code", errCode).Error("Provisioning incomplete after payment confirmation.")
		return &model.ConfirmPaymentResponse{Error: "provisioning_incomplete"}, errCode
	}

	return &model.ConfirmPaymentResponse{
		Success:          true,
		AlreadyConfirmed: alreadyConfirmed,
		Result:           result,
	}, http.StatusOK
}
