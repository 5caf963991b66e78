package model

// Provisioning saga step names, logged with the payment id on any
// step failure.
const (
	ProvisioningStepLoadPayment   = "load_payment"
	ProvisioningStepLoadWorkflow  = "load_workflow_record"
	ProvisioningStepLoadCompany   = "load_company"
	ProvisioningStepInvoice       = "create_invoice"
	ProvisioningStepSubscription  = "create_subscription"
	ProvisioningStepMemberAccount = "create_member_account"
	ProvisioningStepCompanyStatus = "update_company_payment_status"
	ProvisioningStepMarkProcessed = "mark_workflow_processed"
)

// ProvisioningResult - The three derived ids of a completed saga run.
// MemberAccountID stays empty when the flow had no customer.
type ProvisioningResult struct {
	InvoiceID       string `json:"invoice_id"`
	SubscriptionID  string `json:"subscription_id"`
	MemberAccountID string `json:"member_account_id,omitempty"`
}

// ConfirmPaymentResponse - Response of the confirmation entry points.
type ConfirmPaymentResponse struct {
	Success          bool                `json:"success"`
	AlreadyConfirmed bool                `json:"already_confirmed"`
	Result           *ProvisioningResult `json:"result,omitempty"`
	Error            string              `json:"error,omitempty"`
}
