package mailer

import (
	log "github.com/sirupsen/logrus"
)

// DevMailer logs mails instead of sending. Used outside production.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (m *DevMailer) SendMail(to, from, subject, html, text string) error {
	log.WithFields(log.Fields{
		"to":      to,
		"from":    from,
		"subject": subject,
		"text":    text,
	}).Info("DevMailer: skipped sending email.")
	return nil
}
