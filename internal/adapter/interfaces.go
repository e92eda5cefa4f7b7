// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound notification gateway of the
// go-note-keeper server.
//
// The primary abstraction is [Notifier], which renders verification and
// welcome messages and hands them to a [MailTransport]. The transport is
// selected once at startup by [NewNotifier]: a logging transport for
// development, SMTP (gomail), a JSON HTTP mail API (resty) or a RabbitMQ
// queue (amqp091-go) consumed by a separate mail worker.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] on transport failures.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier delivers account notifications. Delivery is best-effort: failures
// are logged by the implementation and reported as false, never retried.
type Notifier interface {
	// SendOTP sends a verification code to address.
	SendOTP(ctx context.Context, address, code string) bool

	// SendWelcome greets a freshly verified identity.
	SendWelcome(ctx context.Context, address, name string) bool

	// Close releases the underlying transport.
	Close() error
}

// MailTransport moves a rendered [models.Message] to its destination.
type MailTransport interface {
	Send(ctx context.Context, msg models.Message) error
	Close() error
}
