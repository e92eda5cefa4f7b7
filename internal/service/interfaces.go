package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService drives the account lifecycle of an email address:
// unregistered, pending verification, verified.
type AuthService interface {
	// Signup registers an unverified identity and sends it a verification
	// code. Returns the normalised email.
	Signup(ctx context.Context, request models.SignupRequest) (string, error)

	// ResendOTP issues a fresh code for an unverified identity. Codes issued
	// earlier stay valid until they expire.
	ResendOTP(ctx context.Context, request models.ResendOTPRequest) error

	// VerifyOTP consumes a matching code, marks the identity verified and
	// opens a session.
	VerifyOTP(ctx context.Context, request models.VerifyOTPRequest) (models.AuthResult, error)

	// Login opens a session for a verified identity with a password.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)

	// FederatedLogin is reserved for an external identity provider and
	// always fails with [ErrNotImplemented].
	FederatedLogin(ctx context.Context) (models.AuthResult, error)

	// Profile returns the public view of an identity.
	Profile(ctx context.Context, identityID string) (models.PublicIdentity, error)

	// Authenticate checks a session token and that its identity still
	// exists.
	Authenticate(ctx context.Context, token string) (models.Session, error)
}

// NoteService is ownership-scoped note handling. ownerID is always the
// identity of the authenticated caller.
type NoteService interface {
	List(ctx context.Context, ownerID string) ([]models.Note, error)
	Create(ctx context.Context, ownerID string, input models.NoteInput) (models.Note, error)
	Update(ctx context.Context, ownerID, noteID string, input models.NoteInput) (models.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// NoteServiceWrapper defines middleware composition for NoteService.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
