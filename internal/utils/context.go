// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT session token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// IdentityIDCtxKey is the key under which the Access Guard stores the
	// authenticated identity id.
	IdentityIDCtxKey = contextKey("identityID")

	// EmailCtxKey is the key under which the Access Guard stores the
	// authenticated identity email.
	EmailCtxKey = contextKey("email")
)

// WithSession returns a copy of ctx carrying the identity id and email of
// the verified session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	ctx = context.WithValue(ctx, IdentityIDCtxKey, session.IdentityID)
	return context.WithValue(ctx, EmailCtxKey, session.Email)
}

// GetIdentityIDFromContext retrieves the authenticated identity id.
//
// Returns ok == false when the value is missing, empty or has an unexpected
// type.
func GetIdentityIDFromContext(ctx context.Context) (string, bool) {
	identityID, ok := ctx.Value(IdentityIDCtxKey).(string)
	return identityID, ok && identityID != ""
}

// GetEmailFromContext retrieves the authenticated identity email.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok && email != ""
}

// GetSessionFromContext rebuilds the session stored by [WithSession].
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	identityID, ok := GetIdentityIDFromContext(ctx)
	if !ok {
		return models.Session{}, false
	}
	email, _ := GetEmailFromContext(ctx)

	return models.Session{IdentityID: identityID, Email: email}, true
}
