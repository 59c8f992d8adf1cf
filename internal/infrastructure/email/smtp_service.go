package email

import (
	"context"
	"fmt"
	"net/smtp"

	"musings-backend/internal/config"
	"musings-backend/pkg/logger"
)

// ContactMessageData carries one contact-form submission to the site owner.
type ContactMessageData struct {
	Name    string
	Email   string
	Message string
}

type EmailService interface {
	SendContactMessage(ctx context.Context, to string, data ContactMessageData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(cfg config.SMTPConfig) EmailService {
	return &smtpEmailService{
		smtpAddr: cfg.Host + ":" + cfg.Port,
		smtpFrom: cfg.From,
	}
}

func (s *smtpEmailService) SendContactMessage(ctx context.Context, to string, data ContactMessageData) error {
	subject := fmt.Sprintf("New contact message from %s", data.Name)
	body := fmt.Sprintf(`You received a new message through the contact form.

From: %s <%s>

%s`, data.Name, data.Email, data.Message)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, data.Email, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg); err != nil {
		logger.Info("Failed to send contact email", map[string]interface{}{
			"error":     err.Error(),
			"to":        to,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
