package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type httpTransport struct {
	client *utils.HTTPClient
	url    string
}

// NewHTTPTransport returns a [MailTransport] that POSTs every message as JSON
// to cfg.URL, authenticating with cfg.APIKey as a bearer token when set.
func NewHTTPTransport(cfg config.HTTPMail) MailTransport {
	client := utils.NewHTTPClient("", cfg.Timeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &httpTransport{client: client, url: cfg.URL}
}

func (t *httpTransport) Send(ctx context.Context, msg models.Message) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(t.url)
	if err != nil {
		return fmt.Errorf("mail api request: %w", err)
	}

	return mapHTTPError(resp)
}

func (t *httpTransport) Close() error {
	return nil
}
