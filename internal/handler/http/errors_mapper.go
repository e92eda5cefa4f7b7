package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:           http.StatusBadRequest,
	service.ErrDuplicateAccount:     http.StatusBadRequest,
	service.ErrInvalidOrExpiredCode: http.StatusBadRequest,
	service.ErrAlreadyVerified:      http.StatusBadRequest,
	ErrInvalidJSON:                  http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnverifiedAccount:  http.StatusUnauthorized,
	service.ErrUnauthorized:       http.StatusUnauthorized,

	service.ErrForbidden:        http.StatusForbidden,
	service.ErrIdentityNotFound: http.StatusNotFound,
	service.ErrNoteNotFound:     http.StatusNotFound,

	service.ErrUpstream:       http.StatusInternalServerError,
	service.ErrNotImplemented: http.StatusNotImplemented,
}

var errorMessageMap = map[error]string{
	service.ErrValidation:           "Invalid input data",
	service.ErrDuplicateAccount:     "User already exists with this email",
	service.ErrInvalidOrExpiredCode: "Invalid or expired OTP",
	service.ErrAlreadyVerified:      "User is already verified",
	ErrInvalidJSON:                  "Invalid JSON was passed",

	service.ErrInvalidCredentials: "Invalid email or password",
	service.ErrUnverifiedAccount:  "Please verify your email before logging in",
	service.ErrUnauthorized:       "Invalid or expired token",

	service.ErrForbidden:        "Not authorized to access this note",
	service.ErrIdentityNotFound: "User not found",
	service.ErrNoteNotFound:     "Note not found",

	service.ErrUpstream:       "Internal server error",
	service.ErrNotImplemented: "Google OAuth not implemented yet",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for err. overrides take
// precedence over the defaults; validation errors list their violations.
func messageFromError(err error, overrides map[error]string) string {
	for target, message := range overrides {
		if errors.Is(err, target) {
			return message
		}
	}
	var violations *validators.ValidationError
	if errors.As(err, &violations) {
		return violations.Error()
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(statusFromError(err))
}

// writeError responds with the status and message mapped from err. Server
// side failures are logged with their cause, which never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, overrides map[error]string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err, overrides), status)
}
