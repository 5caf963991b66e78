package postgres

import (
	"net/http"

	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

func (store *Postgres) createCustomer(customer *model.Customer) (*model.Customer, int) {
	if customer == nil || customer.CompanyID == "" {
		return nil, http.StatusBadRequest
	}

	if customer.ID == "" {
		customer.ID = U.GetUUID()
	}

	db := C.GetServices().Db
	if err := db.Create(customer).Error; err != nil {
		log.WithError(err).Error("createCustomer Failed")
		return nil, http.StatusInternalServerError
	}

	return customer, http.StatusCreated
}

func (store *Postgres) GetCustomer(id string) (*model.Customer, int) {
	if id == "" {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	var customer model.Customer
	if err := db.Limit(1).Where("id = ?", id).Find(&customer).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetCustomer Failed")
		return nil, http.StatusInternalServerError
	}

	return &customer, http.StatusFound
}

func (store *Postgres) createCustomerAgentMapping(customerID, agentUUID string) (*model.CustomerAgentMapping, int) {
	if customerID == "" || agentUUID == "" {
		return nil, http.StatusBadRequest
	}

	mapping := &model.CustomerAgentMapping{
		ID:         U.GetUUID(),
		CustomerID: customerID,
		AgentUUID:  agentUUID,
	}

	db := C.GetServices().Db
	if err := db.Create(mapping).Error; err != nil {
		if IsDuplicateRecordError(err) {
			// Mapping exists from a previous intake attempt. Reuse.
			return store.GetCustomerAgentMapping(customerID)
		}
		log.WithError(err).Error("createCustomerAgentMapping Failed")
		return nil, http.StatusInternalServerError
	}

	return mapping, http.StatusCreated
}

func (store *Postgres) GetCustomerAgentMapping(customerID string) (*model.CustomerAgentMapping, int) {
	if customerID == "" {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	var mapping model.CustomerAgentMapping
	if err := db.Limit(1).Where("customer_id = ?", customerID).Find(&mapping).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetCustomerAgentMapping Failed")
		return nil, http.StatusInternalServerError
	}

	return &mapping, http.StatusFound
}
