package model

import (
	"time"

	"bizdesk/model/model"
)

// Model - Interface of all methods to be implemented by the stores.
type Model interface {
	// agent
	CreateAgent(agent *model.Agent) (*model.Agent, int)
	GetAgentByEmail(email string) (*model.Agent, int)
	GetAgentByUUID(uuid string) (*model.Agent, int)
	UpdateAgentLastLoginInfo(agentUUID string, ts time.Time) int

	// company
	CreateCompanyWithDependencies(params *model.CompanyIntakeParams, agentUUID string) (*model.CompanyIntakeResult, int)
	GetCompany(id string) (*model.Company, int)

	// customer
	GetCustomer(id string) (*model.Customer, int)
	GetCustomerAgentMapping(customerID string) (*model.CustomerAgentMapping, int)

	// payment
	GetPayment(id string) (*model.Payment, int)
	AttachPaymentProviderReference(paymentID, providerRef string) int
	ConfirmPayment(paymentID, providerRef string) (*model.ConfirmPaymentResponse, int)

	// workflow record
	GetWorkflowRecordByPaymentID(paymentID string) (*model.WorkflowRecord, int)
	GetUnprocessedWorkflowRecords(olderThan time.Duration) ([]model.WorkflowRecord, int)

	// provisioning
	RunProvisioning(paymentID string) (*model.ProvisioningResult, int)

	// derived records
	GetInvoiceByPaymentID(paymentID string) (*model.Invoice, int)
	GetSubscriptionByPaymentID(paymentID string) (*model.Subscription, int)
	GetMemberAccountByCustomerID(customerID string) (*model.MemberAccount, int)
}
