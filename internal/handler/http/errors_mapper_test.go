package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrValidation, http.StatusBadRequest},
		{service.ErrDuplicateAccount, http.StatusBadRequest},
		{service.ErrInvalidOrExpiredCode, http.StatusBadRequest},
		{service.ErrAlreadyVerified, http.StatusBadRequest},
		{fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrUnverifiedAccount, http.StatusUnauthorized},
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrIdentityNotFound, http.StatusNotFound},
		{service.ErrNoteNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: %w", service.ErrUpstream, errors.New("boom")), http.StatusInternalServerError},
		{service.ErrNotImplemented, http.StatusNotImplemented},
		{errors.New("unmapped"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	t.Run("default message", func(t *testing.T) {
		assert.Equal(t, "Note not found", messageFromError(service.ErrNoteNotFound, nil))
	})

	t.Run("override wins", func(t *testing.T) {
		overrides := map[error]string{service.ErrForbidden: "Not authorized to delete this note"}

		assert.Equal(t, "Not authorized to delete this note", messageFromError(service.ErrForbidden, overrides))
	})

	t.Run("override for another error is ignored", func(t *testing.T) {
		overrides := map[error]string{service.ErrUpstream: "Failed to fetch notes"}

		assert.Equal(t, "Not authorized to access this note", messageFromError(service.ErrForbidden, overrides))
	})

	t.Run("validation violations", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", service.ErrValidation,
			&validators.ValidationError{Violations: []string{"title is required", "content is required"}})

		assert.Equal(t, "title is required; content is required", messageFromError(err, nil))
	})

	t.Run("cause of upstream failure is hidden", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", service.ErrUpstream, errors.New("pq: password authentication failed"))

		assert.Equal(t, "Internal server error", messageFromError(err, nil))
	})

	t.Run("unmapped error", func(t *testing.T) {
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), messageFromError(errors.New("x"), nil))
	})
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/notes", nil))

	writeError(rec, req, service.ErrNoteNotFound, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Note not found"}`, rec.Body.String())
}
