package postgres

import (
	"net/http"
	"testing"

	"bizdesk/model/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompanyWithDependencies(t *testing.T) {
	store := &Postgres{}
	result := createTestIntake(t, store, model.StarterPlanID, nil)

	company, errCode := store.GetCompany(result.Company.ID)
	require.Equal(t, http.StatusFound, errCode)
	assert.Equal(t, model.CompanyPaymentStatusPending, company.PaymentStatus)

	customer, errCode := store.GetCustomer(result.Customer.ID)
	require.Equal(t, http.StatusFound, errCode)
	assert.Equal(t, company.ID, customer.CompanyID)

	// Portal admin agent is provisioned and mapped to the customer.
	mapping, errCode := store.GetCustomerAgentMapping(customer.ID)
	require.Equal(t, http.StatusFound, errCode)
	agent, errCode := store.GetAgentByUUID(mapping.AgentUUID)
	require.Equal(t, http.StatusFound, errCode)
	assert.Equal(t, customer.Email, agent.Email)

	// A pending payment with derived amounts: 50 net, 20% tax.
	payment, errCode := store.GetPayment(result.Payment.ID)
	require.Equal(t, http.StatusFound, errCode)
	assert.Equal(t, model.PaymentStatusPending, payment.Status)
	assert.Equal(t, 50.0, payment.AmountNet)
	assert.Equal(t, 10.0, payment.AmountTax)
	assert.Equal(t, 60.0, payment.AmountGross)
	assert.Equal(t, 60.0, result.AmountDue)

	// The workflow record stages provisioning but nothing is
	// provisioned yet.
	record, errCode := store.GetWorkflowRecordByPaymentID(payment.ID)
	require.Equal(t, http.StatusFound, errCode)
	assert.False(t, record.Processed)
	assert.Equal(t, company.ID, record.CompanyID)
	require.NotNil(t, record.CustomerID)
	assert.Equal(t, customer.ID, *record.CustomerID)

	_, errCode = store.GetInvoiceByPaymentID(payment.ID)
	assert.Equal(t, http.StatusNotFound, errCode)
	_, errCode = store.GetSubscriptionByPaymentID(payment.ID)
	assert.Equal(t, http.StatusNotFound, errCode)
	_, errCode = store.GetMemberAccountByCustomerID(customer.ID)
	assert.Equal(t, http.StatusNotFound, errCode)
}

func TestCreateCompanyWithoutPlan(t *testing.T) {
	store := &Postgres{}
	operator := createTestOperatorAgent(t, store)

	result, errCode := store.CreateCompanyWithDependencies(&model.CompanyIntakeParams{
		Company: &model.Company{Name: "Free Co"},
	}, operator.UUID)
	require.Equal(t, http.StatusCreated, errCode)

	assert.Equal(t, model.CompanyPaymentStatusNoneRequired, result.Company.PaymentStatus)
	assert.Nil(t, result.Payment)
	assert.Equal(t, 0.0, result.AmountDue)
}

func TestCreateCompanyIntakeValidation(t *testing.T) {
	store := &Postgres{}
	operator := createTestOperatorAgent(t, store)

	// Unknown plan.
	_, errCode := store.CreateCompanyWithDependencies(&model.CompanyIntakeParams{
		Company: &model.Company{Name: "Bad Plan Co"},
		PlanID:  99999,
	}, operator.UUID)
	assert.Equal(t, http.StatusNotFound, errCode)

	// Inactive plan.
	_, errCode = store.CreateCompanyWithDependencies(&model.CompanyIntakeParams{
		Company: &model.Company{Name: "Legacy Co"},
		PlanID:  model.LegacyPlanID,
	}, operator.UUID)
	assert.Equal(t, http.StatusUnprocessableEntity, errCode)

	// Unknown add-on.
	_, errCode = store.CreateCompanyWithDependencies(&model.CompanyIntakeParams{
		Company:  &model.Company{Name: "Add-on Co"},
		PlanID:   model.StarterPlanID,
		AddOnIDs: []string{"no-such-add-on"},
	}, operator.UUID)
	assert.Equal(t, http.StatusBadRequest, errCode)

	// No authenticated agent.
	_, errCode = store.CreateCompanyWithDependencies(&model.CompanyIntakeParams{
		Company: &model.Company{Name: "Anon Co"},
	}, "")
	assert.Equal(t, http.StatusUnauthorized, errCode)

	// No company name.
	_, errCode = store.CreateCompanyWithDependencies(&model.CompanyIntakeParams{
		Company: &model.Company{},
	}, operator.UUID)
	assert.Equal(t, http.StatusBadRequest, errCode)
}

func TestIntakeAmountsWithAddOns(t *testing.T) {
	store := &Postgres{}
	result := createTestIntake(t, store, model.BusinessPlanID,
		[]string{"extra-storage-monthly", "extra-seats-5-monthly"})

	// 100 plan + 10 + 15 add-ons, 20% tax.
	assert.Equal(t, 125.0, result.Payment.AmountNet)
	assert.Equal(t, 25.0, result.Payment.AmountTax)
	assert.Equal(t, 150.0, result.Payment.AmountGross)
}

func TestIntakeAmountsWithAnnualPlan(t *testing.T) {
	store := &Postgres{}
	result := createTestIntake(t, store, model.PremiumPlanID, nil)

	// Premium has no monthly price; 2400 annual / 12 = 200.
	assert.Equal(t, 200.0, result.Payment.AmountNet)
	assert.Equal(t, 40.0, result.Payment.AmountTax)
	assert.Equal(t, 240.0, result.Payment.AmountGross)
}
