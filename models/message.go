package models

// MessageKind tells mail transports which template produced a [Message].
type MessageKind string

const (
	MessageKindOTP     MessageKind = "otp"
	MessageKindWelcome MessageKind = "welcome"
)

// Message is an outbound email handed to a mail transport.
type Message struct {
	Kind    MessageKind `json:"kind"`
	From    string      `json:"from,omitempty"`
	To      string      `json:"to"`
	Subject string      `json:"subject"`
	Body    string      `json:"body"`
}
