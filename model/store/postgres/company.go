package postgres

import (
	"net/http"

	"bizdesk/billing/chargebee"
	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

// CreateCompanyWithDependencies - Intake entry point. Creates the
// company, the optional customer with its login identity, and, when a
// plan is selected, the pending payment plus the workflow record that
// stages provisioning. No invoice or subscription is created here.
func (store *Postgres) CreateCompanyWithDependencies(params *model.CompanyIntakeParams,
	agentUUID string) (*model.CompanyIntakeResult, int) {

	if agentUUID == "" {
		return nil, http.StatusUnauthorized
	}
	if params == nil || params.Company == nil || params.Company.Name == "" {
		return nil, http.StatusBadRequest
	}

	logCtx := log.WithFields(log.Fields{
		"company_name": params.Company.Name,
		"agent_uuid":   agentUUID,
		"plan_id":      params.PlanID,
	})

	// Plan resolution happens before any write. Input errors must
	// leave no side effects.
	var plan *model.Plan
	if params.PlanID != 0 {
		resolvedPlan, errCode := model.GetPlanByID(params.PlanID)
		if errCode != http.StatusFound {
			logCtx.Error("Intake failed. Plan not found.")
			return nil, http.StatusNotFound
		}
		if !resolvedPlan.IsActive {
			logCtx.Error("Intake failed. Plan is inactive.")
			return nil, http.StatusUnprocessableEntity
		}
		for _, addOnID := range params.AddOnIDs {
			if _, errCode := model.GetAddOnByID(addOnID); errCode != http.StatusFound {
				logCtx.WithField("add_on_id", addOnID).Error("Intake failed. Unknown add-on.")
				return nil, http.StatusBadRequest
			}
		}
		plan = resolvedPlan
	}

	company := params.Company
	company.ID = U.GetUUID()
	company.OwnerAgentUUID = agentUUID
	if plan != nil {
		company.PaymentStatus = model.CompanyPaymentStatusPending
	} else {
		company.PaymentStatus = model.CompanyPaymentStatusNoneRequired
	}

	db := C.GetServices().Db
	if err := db.Create(company).Error; err != nil {
		logCtx.WithError(err).Error("Intake failed. Company creation error.")
		return nil, http.StatusInternalServerError
	}

	result := &model.CompanyIntakeResult{Company: company}

	var customer *model.Customer
	var customerAgent *model.Agent
	if params.Customer != nil && params.Customer.Email != "" {
		params.Customer.CompanyID = company.ID
		createdCustomer, errCode := store.createCustomer(params.Customer)
		if errCode != http.StatusCreated {
			return nil, errCode
		}
		customer = createdCustomer
		result.Customer = customer

		if params.CreatePortalAdmin {
			agent, errCode := store.createOrReuseAgentByEmail(customer.Email,
				customer.FirstName, customer.LastName, params.CustomerPassword)
			if errCode != http.StatusCreated && errCode != http.StatusFound {
				return nil, errCode
			}
			customerAgent = agent

			if _, errCode := store.createCustomerAgentMapping(customer.ID, agent.UUID); errCode != http.StatusCreated &&
				errCode != http.StatusFound {
				return nil, errCode
			}
		}
	}

	if plan != nil {
		net, tax, gross := model.ComputePaymentAmounts(plan, params.AddOnIDs)

		snapshot := &model.PaymentSnapshot{
			PlanID:      plan.ID,
			AddOnIDs:    params.AddOnIDs,
			CompanyID:   company.ID,
			AmountNet:   net,
			AmountTax:   tax,
			AmountGross: gross,
		}
		if customer != nil {
			snapshot.CustomerID = customer.ID
		}
		if customerAgent != nil {
			snapshot.AgentUUID = customerAgent.UUID
		}

		payment, errCode := store.createPayment(company.ID, net, tax, gross,
			model.PaymentMethodCard, snapshot)
		if errCode != http.StatusCreated {
			return nil, errCode
		}

		record := &model.WorkflowRecord{
			PaymentID:        payment.ID,
			CompanyID:        company.ID,
			PlanID:           plan.ID,
			AmountNet:        net,
			AmountTax:        tax,
			AmountGross:      gross,
			SendWelcomeEmail: params.SendWelcomeEmail,
		}
		if customer != nil {
			record.CustomerID = &customer.ID
		}
		if customerAgent != nil {
			record.AgentUUID = &customerAgent.UUID
		}
		if _, errCode := store.upsertWorkflowRecord(record); errCode != http.StatusCreated {
			return nil, errCode
		}

		result.Payment = payment
		result.AmountDue = gross
	}

	// Provider-side customer creation is best effort. The payment
	// confirmation path never depends on it.
	if chargebee.IsEnabled() {
		billingCustomerID, err := chargebee.CreateBillingCustomer(company, customer)
		if err != nil {
			logCtx.WithError(err).Error("Failed to create billing provider customer.")
		} else {
			store.updateCompanyBillingCustomerID(company.ID, billingCustomerID)
			company.BillingCustomerID = billingCustomerID
		}
	}

	return result, http.StatusCreated
}

func (store *Postgres) GetCompany(id string) (*model.Company, int) {
	if id == "" {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	var company model.Company
	if err := db.Limit(1).Where("id = ?", id).Find(&company).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetCompany Failed")
		return nil, http.StatusInternalServerError
	}

	return &company, http.StatusFound
}

// updateCompanyPaymentStatusIfPending - Conditional update, only the
// caller that observes pending wins. Returns rows affected.
func (store *Postgres) updateCompanyPaymentStatusIfPending(companyID, toStatus string) (int64, int) {
	if companyID == "" {
		return 0, http.StatusBadRequest
	}

	db := C.GetServices().Db
	dbx := db.Model(&model.Company{}).
		Where("id = ? AND payment_status = ?", companyID, model.CompanyPaymentStatusPending).
		Update("payment_status", toStatus)
	if dbx.Error != nil {
		log.WithError(dbx.Error).WithField("company_id", companyID).
			Error("updateCompanyPaymentStatusIfPending Failed")
		return 0, http.StatusInternalServerError
	}

	return dbx.RowsAffected, http.StatusAccepted
}

func (store *Postgres) updateCompanyBillingCustomerID(companyID, billingCustomerID string) int {
	db := C.GetServices().Db
	dbx := db.Model(&model.Company{}).Where("id = ?", companyID).
		Update("billing_customer_id", billingCustomerID)
	if dbx.Error != nil {
		log.WithError(dbx.Error).WithField("company_id", companyID).
			Error("updateCompanyBillingCustomerID Failed")
		return http.StatusInternalServerError
	}
	return http.StatusAccepted
}
