// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	otpSubject     = "Your verification code"
	welcomeSubject = "Welcome to Note Keeper"
)

type notifier struct {
	transport MailTransport
	from      string

	logger *logger.Logger
}

// NewNotifier builds a [Notifier] over the transport named in
// cfg.Transport. Returns [ErrUnknownTransport] for an unsupported name, or
// the transport's own error when it cannot be initialised (e.g. the broker
// is unreachable).
func NewNotifier(cfg config.Notifier, log *logger.Logger) (Notifier, error) {
	var (
		transport MailTransport
		err       error
	)

	switch cfg.Transport {
	case config.TransportLog, "":
		transport = NewLogTransport(log)
	case config.TransportSMTP:
		transport = NewSMTPTransport(cfg.SMTP)
	case config.TransportHTTP:
		transport = NewHTTPTransport(cfg.HTTP)
	case config.TransportAMQP:
		transport, err = NewAMQPTransport(cfg.AMQP)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
	if err != nil {
		return nil, fmt.Errorf("error initialising %s mail transport: %w", cfg.Transport, err)
	}

	return NewNotifierWithTransport(transport, cfg.From, log), nil
}

// NewNotifierWithTransport wraps an already constructed transport.
func NewNotifierWithTransport(transport MailTransport, from string, log *logger.Logger) Notifier {
	return &notifier{transport: transport, from: from, logger: log}
}

// SendOTP implements [Notifier].
func (n *notifier) SendOTP(ctx context.Context, address, code string) bool {
	return n.send(ctx, models.Message{
		Kind:    models.MessageKindOTP,
		From:    n.from,
		To:      address,
		Subject: otpSubject,
		Body: fmt.Sprintf("Your Note Keeper verification code is %s.\n"+
			"It expires shortly. If you did not sign up, ignore this message.", code),
	})
}

// SendWelcome implements [Notifier].
func (n *notifier) SendWelcome(ctx context.Context, address, name string) bool {
	return n.send(ctx, models.Message{
		Kind:    models.MessageKindWelcome,
		From:    n.from,
		To:      address,
		Subject: welcomeSubject,
		Body:    fmt.Sprintf("Hi %s,\nyour email is verified. Happy note taking!", name),
	})
}

// Close implements [Notifier].
func (n *notifier) Close() error {
	return n.transport.Close()
}

func (n *notifier) send(ctx context.Context, msg models.Message) bool {
	log := logger.FromContextOr(ctx, n.logger)

	if err := n.transport.Send(ctx, msg); err != nil {
		log.Err(err).
			Str("kind", string(msg.Kind)).
			Str("to", msg.To).
			Msg("failed to send message")
		return false
	}

	log.Debug().
		Str("kind", string(msg.Kind)).
		Str("to", msg.To).
		Msg("message sent")
	return true
}
