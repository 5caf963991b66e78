package mailer

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	log "github.com/sirupsen/logrus"
)

const charset = "UTF-8"

type SESMailer struct {
	client *ses.SES
}

func NewSESMailer(region, key, secret string) *SESMailer {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(key, secret, ""),
	}))

	return &SESMailer{client: ses.New(sess)}
}

func (m *SESMailer) SendMail(to, from, subject, html, text string) error {
	input := &ses.SendEmailInput{
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(to)},
		},
		Message: &ses.Message{
			Body: &ses.Body{
				Html: &ses.Content{
					Charset: aws.String(charset),
					Data:    aws.String(html),
				},
				Text: &ses.Content{
					Charset: aws.String(charset),
					Data:    aws.String(text),
				},
			},
			Subject: &ses.Content{
				Charset: aws.String(charset),
				Data:    aws.String(subject),
			},
		},
		Source: aws.String(from),
	}

	_, err := m.client.SendEmail(input)
	if err != nil {
		log.WithError(err).WithField("to", to).Error("Failed to send email through SES.")
	}
	return err
}
