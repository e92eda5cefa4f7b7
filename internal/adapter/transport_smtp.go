package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/models"
	"gopkg.in/gomail.v2"
)

// smtpSender is the subset of *gomail.Dialer used by the transport.
type smtpSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpTransport struct {
	sender smtpSender
	from   string
}

// NewSMTPTransport returns a [MailTransport] that dials the SMTP server for
// every message.
func NewSMTPTransport(cfg config.SMTP) MailTransport {
	return &smtpTransport{
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.Username,
	}
}

func (t *smtpTransport) Send(ctx context.Context, msg models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := msg.From
	if from == "" {
		from = t.from
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := t.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (t *smtpTransport) Close() error {
	return nil
}
