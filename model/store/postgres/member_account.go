package postgres

import (
	"net/http"

	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

// createOrReuseMemberAccount - Idempotent per customer through the
// unique customer_id key.
func (store *Postgres) createOrReuseMemberAccount(customerID, companyID, agentUUID string) (*model.MemberAccount, int) {
	if customerID == "" || companyID == "" || agentUUID == "" {
		return nil, http.StatusBadRequest
	}

	if existingAccount, errCode := store.GetMemberAccountByCustomerID(customerID); errCode == http.StatusFound {
		return existingAccount, http.StatusFound
	} else if errCode == http.StatusInternalServerError {
		return nil, errCode
	}

	account := &model.MemberAccount{
		ID:         U.GetUUID(),
		CustomerID: customerID,
		CompanyID:  companyID,
		AgentUUID:  agentUUID,
		Status:     model.MemberAccountStatusActive,
	}

	db := C.GetServices().Db
	if err := db.Create(account).Error; err != nil {
		if IsDuplicateRecordError(err) {
			return store.GetMemberAccountByCustomerID(customerID)
		}
		log.WithError(err).WithField("customer_id", customerID).
			Error("createOrReuseMemberAccount Failed")
		return nil, http.StatusInternalServerError
	}

	return account, http.StatusCreated
}

func (store *Postgres) GetMemberAccountByCustomerID(customerID string) (*model.MemberAccount, int) {
	if customerID == "" {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	var account model.MemberAccount
	if err := db.Limit(1).Where("customer_id = ?", customerID).Find(&account).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetMemberAccountByCustomerID Failed")
		return nil, http.StatusInternalServerError
	}

	return &account, http.StatusFound
}
