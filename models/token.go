package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by every session token.
//
// The identity id travels in the standard "sub" claim; Email is a private
// claim so that the Access Guard can attach it to the request without a
// storage round-trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the normalised email of the identity the token was issued for.
	Email string `json:"email"`
}

// Session is the verified content of a session token.
type Session struct {
	IdentityID string
	Email      string
}

// Session extracts the identity id and email from the claims.
// Returns an error if the subject claim is missing.
func (c *SessionClaims) Session() (Session, error) {
	if c.Subject == "" {
		return Session{}, errors.New("empty subject in session token")
	}

	return Session{IdentityID: c.Subject, Email: c.Email}, nil
}

// Token wraps an issued JWT session token.
//
// It embeds [jwt.Token] for low-level inspection. SignedString holds the
// compact serialized form (header.payload.signature) sent to clients in the
// response body and expected back in the Authorization header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Session is the identity the token asserts.
	Session Session `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
