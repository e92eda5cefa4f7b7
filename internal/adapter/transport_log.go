package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// logTransport writes messages to the application log instead of sending
// them. Development only: the log contains the verification codes.
type logTransport struct {
	logger *logger.Logger
}

// NewLogTransport returns a [MailTransport] that logs every message.
func NewLogTransport(log *logger.Logger) MailTransport {
	return &logTransport{logger: log}
}

func (t *logTransport) Send(ctx context.Context, msg models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.logger.Info().
		Str("kind", string(msg.Kind)).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("outgoing email")
	return nil
}

func (t *logTransport) Close() error {
	return nil
}
