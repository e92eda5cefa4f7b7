package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

var testMessage = models.Message{
	Kind:    models.MessageKindOTP,
	From:    "bot@x.com",
	To:      "ann@x.com",
	Subject: "Your verification code",
	Body:    "123456",
}

// ── HTTP ────────────────────────────────────────────────────────────────────

func TestHTTPTransport_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send", r.URL.Path)
		assert.Equal(t, "Bearer api-key", r.Header.Get("Authorization"))

		var got models.Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, testMessage, got)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(config.HTTPMail{URL: srv.URL + "/send", APIKey: "api-key", Timeout: time.Second})

	require.NoError(t, tr.Send(context.Background(), testMessage))
	assert.NoError(t, tr.Close())
}

func TestHTTPTransport_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnprocessableEntity, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			tr := NewHTTPTransport(config.HTTPMail{URL: srv.URL, Timeout: time.Second})
			err := tr.Send(context.Background(), testMessage)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestHTTPTransport_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(config.HTTPMail{URL: srv.URL})
	err := tr.Send(context.Background(), testMessage)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "418")
}

func TestHTTPTransport_Unreachable(t *testing.T) {
	tr := NewHTTPTransport(config.HTTPMail{URL: "http://127.0.0.1:1/send", Timeout: time.Second})

	assert.Error(t, tr.Send(context.Background(), testMessage))
}

// ── SMTP ────────────────────────────────────────────────────────────────────

type fakeSMTPSender struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeSMTPSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, m...)
	return nil
}

func TestSMTPTransport_Send(t *testing.T) {
	sender := &fakeSMTPSender{}
	tr := &smtpTransport{sender: sender, from: "fallback@x.com"}

	require.NoError(t, tr.Send(context.Background(), testMessage))
	require.Len(t, sender.messages, 1)
	assert.Equal(t, []string{"bot@x.com"}, sender.messages[0].GetHeader("From"))
	assert.Equal(t, []string{"ann@x.com"}, sender.messages[0].GetHeader("To"))
	assert.Equal(t, []string{"Your verification code"}, sender.messages[0].GetHeader("Subject"))
}

func TestSMTPTransport_FallbackFrom(t *testing.T) {
	sender := &fakeSMTPSender{}
	tr := &smtpTransport{sender: sender, from: "fallback@x.com"}

	msg := testMessage
	msg.From = ""
	require.NoError(t, tr.Send(context.Background(), msg))
	assert.Equal(t, []string{"fallback@x.com"}, sender.messages[0].GetHeader("From"))
}

func TestSMTPTransport_Errors(t *testing.T) {
	tr := &smtpTransport{sender: &fakeSMTPSender{err: errors.New("535 auth failed")}}
	assert.ErrorContains(t, tr.Send(context.Background(), testMessage), "535 auth failed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tr.Send(ctx, testMessage), context.Canceled)
}

// ── AMQP ────────────────────────────────────────────────────────────────────

type fakePublisher struct {
	queue      string
	publishing amqp.Publishing
	err        error
	closed     bool
}

func (f *fakePublisher) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.queue = key
	f.publishing = msg
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func TestAMQPTransport_Send(t *testing.T) {
	pub := &fakePublisher{}
	tr := &amqpTransport{channel: pub, queue: "mail"}

	require.NoError(t, tr.Send(context.Background(), testMessage))

	assert.Equal(t, "mail", pub.queue)
	assert.Equal(t, "application/json", pub.publishing.ContentType)
	assert.Equal(t, amqp.Persistent, pub.publishing.DeliveryMode)
	assert.Equal(t, "otp", pub.publishing.Type)

	var got models.Message
	require.NoError(t, json.Unmarshal(pub.publishing.Body, &got))
	assert.Equal(t, testMessage, got)
}

func TestAMQPTransport_PublishError(t *testing.T) {
	tr := &amqpTransport{channel: &fakePublisher{err: amqp.ErrClosed}, queue: "mail"}

	assert.ErrorIs(t, tr.Send(context.Background(), testMessage), amqp.ErrClosed)
}

func TestAMQPTransport_Close(t *testing.T) {
	pub := &fakePublisher{}
	tr := &amqpTransport{channel: pub, queue: "mail"}

	require.NoError(t, tr.Close())
	assert.True(t, pub.closed)
}
