package postgres

import (
	"net/http"

	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/jinzhu/gorm"
	"github.com/jinzhu/now"
	log "github.com/sirupsen/logrus"
)

// createSubscriptionForPayment - Insert-or-reuse keyed by the unique
// payment_id, same pattern as invoices. The billing period is aligned
// to the confirmation month.
func (store *Postgres) createSubscriptionForPayment(payment *model.Payment,
	record *model.WorkflowRecord) (*model.Subscription, int) {

	if payment == nil || record == nil {
		return nil, http.StatusBadRequest
	}

	if existingSubscription, errCode := store.GetSubscriptionByPaymentID(payment.ID); errCode == http.StatusFound {
		return existingSubscription, http.StatusFound
	} else if errCode == http.StatusInternalServerError {
		return nil, errCode
	}

	periodStart := U.TimeNowZ()
	subscription := &model.Subscription{
		ID:            U.GetUUID(),
		CompanyID:     record.CompanyID,
		PaymentID:     payment.ID,
		PlanID:        record.PlanID,
		Status:        model.SubscriptionStatusActive,
		PeriodStart:   periodStart,
		PeriodEnd:     now.New(periodStart).EndOfMonth(),
		MonthlyAmount: record.AmountNet,
	}

	db := C.GetServices().Db
	if err := db.Create(subscription).Error; err != nil {
		if IsDuplicateRecordError(err) {
			return store.GetSubscriptionByPaymentID(payment.ID)
		}
		log.WithError(err).WithField("payment_id", payment.ID).
			Error("createSubscriptionForPayment Failed")
		return nil, http.StatusInternalServerError
	}

	return subscription, http.StatusCreated
}

func (store *Postgres) GetSubscriptionByPaymentID(paymentID string) (*model.Subscription, int) {
	if paymentID == "" {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	var subscription model.Subscription
	if err := db.Limit(1).Where("payment_id = ?", paymentID).Find(&subscription).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetSubscriptionByPaymentID Failed")
		return nil, http.StatusInternalServerError
	}

	return &subscription, http.StatusFound
}
