package postgres

import (
	"fmt"
	"net/http"
	"strings"

	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/jinzhu/gorm"
	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"
)

func generateInvoiceNumber(issuedYear int) string {
	return fmt.Sprintf("INV-%d-%s", issuedYear, strings.ToUpper(xid.New().String()))
}

// createInvoiceForPayment - Insert-or-reuse keyed by the unique
// payment_id. A concurrent second writer hits the unique constraint
// and reads the winner's row instead of erroring.
func (store *Postgres) createInvoiceForPayment(payment *model.Payment,
	record *model.WorkflowRecord) (*model.Invoice, int) {

	if payment == nil || record == nil {
		return nil, http.StatusBadRequest
	}

	if existingInvoice, errCode := store.GetInvoiceByPaymentID(payment.ID); errCode == http.StatusFound {
		return existingInvoice, http.StatusFound
	} else if errCode == http.StatusInternalServerError {
		return nil, errCode
	}

	issuedAt := U.TimeNowZ()
	invoice := &model.Invoice{
		ID:          U.GetUUID(),
		CompanyID:   record.CompanyID,
		PaymentID:   payment.ID,
		Number:      generateInvoiceNumber(issuedAt.Year()),
		AmountNet:   record.AmountNet,
		AmountTax:   record.AmountTax,
		AmountGross: record.AmountGross,
		Status:      model.InvoiceStatusPaid,
		IssuedAt:    issuedAt,
	}

	db := C.GetServices().Db
	if err := db.Create(invoice).Error; err != nil {
		if IsDuplicateRecordError(err) {
			return store.GetInvoiceByPaymentID(payment.ID)
		}
		log.WithError(err).WithField("payment_id", payment.ID).Error("createInvoiceForPayment Failed")
		return nil, http.StatusInternalServerError
	}

	return invoice, http.StatusCreated
}

func (store *Postgres) GetInvoiceByPaymentID(paymentID string) (*model.Invoice, int) {
	if paymentID == "" {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	var invoice model.Invoice
	if err := db.Limit(1).Where("payment_id = ?", paymentID).Find(&invoice).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetInvoiceByPaymentID Failed")
		return nil, http.StatusInternalServerError
	}

	return &invoice, http.StatusFound
}
