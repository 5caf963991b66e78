// Package chargebee wraps the provider-side billing API. Everything
// here is optional: the provisioning workflow never depends on the
// provider being reachable.
package chargebee

import (
	C "bizdesk/config"
	"bizdesk/model/model"

	customerAction "github.com/chargebee/chargebee-go/v3/actions/customer"
	"github.com/chargebee/chargebee-go/v3/models/customer"
	log "github.com/sirupsen/logrus"
)

func IsEnabled() bool {
	return C.IsChargebeeEnabled()
}

// CreateBillingCustomer mirrors a company (and its primary contact)
// as a provider-side customer, so later charges can reference it.
func CreateBillingCustomer(company *model.Company, primaryCustomer *model.Customer) (string, error) {
	params := &customer.CreateRequestParams{
		Company: company.Name,
	}
	if primaryCustomer != nil {
		params.FirstName = primaryCustomer.FirstName
		params.LastName = primaryCustomer.LastName
		params.Email = primaryCustomer.Email
		params.Phone = primaryCustomer.Phone
	}

	res, err := customerAction.Create(params).Request()
	if err != nil {
		log.WithError(err).WithField("company_id", company.ID).
			Error("Failed to create customer on chargebee")
		return "", err
	}

	return res.Customer.Id, nil
}
