// Package notification sends the emails that follow a completed
// provisioning run. Dispatch is strictly best effort: failures are
// logged and never propagated back into the saga.
package notification

import (
	"fmt"
	"time"

	C "bizdesk/config"
	"bizdesk/handler/helpers"
	"bizdesk/model/model"

	log "github.com/sirupsen/logrus"
)

// DispatchProvisioned sends the member welcome email (with a portal
// activation link) and the invoice email. Meant to be called in its
// own goroutine.
func DispatchProvisioned(company *model.Company, customer *model.Customer,
	agent *model.Agent, invoice *model.Invoice) {

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Recovered panic in notification dispatch.")
		}
	}()

	if customer == nil || customer.Email == "" {
		return
	}

	if agent != nil {
		if err := sendWelcomeEmail(company, customer, agent); err != nil {
			log.WithError(err).WithField("customer_id", customer.ID).
				Error("Failed to send welcome email.")
		}
	}

	if invoice != nil {
		if err := sendInvoiceEmail(company, customer, invoice); err != nil {
			log.WithError(err).WithField("invoice_id", invoice.ID).
				Error("Failed to send invoice email.")
		}
	}
}

func sendWelcomeEmail(company *model.Company, customer *model.Customer, agent *model.Agent) error {
	authToken, err := helpers.GetAuthData(agent.Email, agent.UUID, agent.Salt,
		helpers.SecondsInFifteenDays*time.Second)
	if err != nil {
		return err
	}

	feHost := C.GetProtocol() + C.GetAPPDomain()
	link := fmt.Sprintf("%s/#/activate?token=%s", feHost, authToken)

	subject := fmt.Sprintf("Your %s member portal is ready", company.Name)
	text := fmt.Sprintf("Your member portal account for %s has been created. Activate it here: %s",
		company.Name, link)
	html := fmt.Sprintf("<p>Your member portal account for %s has been created.</p><p><a href=\"%s\">Activate your account</a></p>",
		company.Name, link)

	log.WithField("email", customer.Email).Info("Sending member welcome email.")
	return C.GetServices().Mailer.SendMail(customer.Email, C.GetEmailSender(), subject, html, text)
}

func sendInvoiceEmail(company *model.Company, customer *model.Customer, invoice *model.Invoice) error {
	subject := fmt.Sprintf("Invoice %s for %s", invoice.Number, company.Name)
	text := fmt.Sprintf("Invoice %s: net %.2f, tax %.2f, total %.2f.",
		invoice.Number, invoice.AmountNet, invoice.AmountTax, invoice.AmountGross)
	html := fmt.Sprintf("<p>Invoice %s</p><p>Net: %.2f<br>Tax: %.2f<br>Total: %.2f</p>",
		invoice.Number, invoice.AmountNet, invoice.AmountTax, invoice.AmountGross)

	log.WithField("email", customer.Email).Info("Sending invoice email.")
	return C.GetServices().Mailer.SendMail(customer.Email, C.GetEmailSender(), subject, html, text)
}
