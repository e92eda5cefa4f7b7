package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ErrPasswordTooLong is returned by HashPassword for passwords over 72 bytes,
// the most bcrypt can hash.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_service_mock.go -package=mock

// CredentialService owns every secret-handling primitive of the server:
// password hashing, session token issuing and checking, and one-time code
// generation. It knows nothing about storage or transport.
type CredentialService interface {
	// HashPassword returns a salted bcrypt hash of plain.
	// Two calls with the same input yield different hashes. Returns
	// ErrPasswordTooLong for passwords bcrypt cannot hash.
	HashPassword(plain string) (string, error)

	// VerifyPassword reports whether plain matches hash. Malformed hashes
	// yield false, never an error.
	VerifyPassword(plain, hash string) bool

	// IssueSession signs a session token for identity, valid for the
	// configured token duration.
	IssueSession(identity models.Identity) (models.Token, error)

	// VerifySession returns the session asserted by token, or false when the
	// token is malformed, tampered with, expired or signed with another key.
	VerifySession(token string) (models.Session, bool)

	// GenerateOTP returns a 6-digit decimal code drawn uniformly from
	// [100000, 999999] using the OS CSPRNG.
	GenerateOTP() string
}
