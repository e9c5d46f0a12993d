package services

import (
	"fmt"

	"booksmart/internal/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender delivers a plain-text message to a single recipient. It is the
// transport capability behind the notification endpoints.
type Sender interface {
	Send(toName, toEmail, subject, body string) error
}

// SendGridSender sends email through the SendGrid API
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridSender(cfg config.SendGridConfig) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *SendGridSender) Send(toName, toEmail, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmailPlainText(from, subject, to, body)
	response, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email to %s: %d", toEmail, response.StatusCode)
	}
	return nil
}
