// File: /services/email_service.go
package services

import (
	"fmt"

	"autosales-api/config"
	"autosales-api/models"

	"gopkg.in/gomail.v2"
)

// EmailService sends the notification mails triggered by inbound
// customer messages.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendMessageNotification tells an employee a customer message was
// assigned to them.
func (es *EmailService) SendMessageNotification(toEmail, toName string, msg *models.Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New customer contact from %s", msg.Name))

	body := fmt.Sprintf(`Hello %s,

A customer message was assigned to you.

From:  %s <%s>
Phone: %s

%s

Please get in touch as soon as possible.
`, toName, msg.Name, msg.Email, phoneOrDash(msg.Phone), msg.Body)

	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

func phoneOrDash(phone *string) string {
	if phone == nil || *phone == "" {
		return "-"
	}
	return *phone
}
