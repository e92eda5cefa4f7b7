package service

import "errors"

// Errors returned by the services. Their messages are safe to show to API
// clients; the transport maps each one to a status code.
var (
	ErrValidation = errors.New("invalid input data")

	ErrDuplicateAccount     = errors.New("user already exists with this email")
	ErrIdentityNotFound     = errors.New("user not found")
	ErrAlreadyVerified      = errors.New("user is already verified")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired OTP")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUnverifiedAccount    = errors.New("please verify your email before logging in")
	ErrUnauthorized         = errors.New("invalid or expired token")
	ErrNotImplemented       = errors.New("google OAuth not implemented yet")

	ErrForbidden    = errors.New("not authorized to access this note")
	ErrNoteNotFound = errors.New("note not found")

	// ErrUpstream hides storage and credential failures from callers. The
	// cause stays in the chain for logging.
	ErrUpstream = errors.New("internal server error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
