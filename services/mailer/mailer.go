// File: services/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"freeflow/config"
	"freeflow/utils"

	"go.uber.org/zap"
)

// Sender delivers transactional email.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends plain-text mail over unauthenticated SMTP, which covers
// both local Mailpit-style catchers and an internal relay.
type SMTPSender struct {
	addr string
	from string
}

// NewSMTPSender constructs an SMTPSender from the application config.
func NewSMTPSender() *SMTPSender {
	from := strings.TrimSpace(config.AppConfig.MailFrom)
	if from == "" {
		from = "no-reply@freeflow.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(config.AppConfig.SMTPHost), strings.TrimSpace(config.AppConfig.SMTPPort)),
		from: from,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	logger := utils.GetLogger()
	msg := buildMessage(s.from, to, subject, body)
	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg)); err != nil {
		logger.Error("Failed to send email", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body,
	)
}
