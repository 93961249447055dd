package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/tjcichra/tira-backend/internal/domain/notification"
	"github.com/tjcichra/tira-backend/internal/shared/config"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
)

// SMTPSender delivers notification jobs over SMTP with STARTTLS and
// authenticated credentials. It is the consumer-side collaborator of
// the notification queue.
type SMTPSender struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPSender{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPSender) Send(job notification.Job) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", job.To)
	m.SetHeader("Subject", job.Subject)
	m.SetBody("text/html", job.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.NewDeliveryError(
			fmt.Sprintf("failed to send email to %s", job.To),
			err.Error(),
		)
	}

	return nil
}
