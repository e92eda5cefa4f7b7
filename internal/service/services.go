package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices wires the services over the chosen storage backend. Request
// validation wraps the auth and note services.
func NewServices(
	storages *store.Storages,
	credentials crypto.CredentialService,
	notifier adapter.Notifier,
	cfg config.App,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	authService := NewAuthService(storages.Identities, storages.OTPs, credentials, notifier, cfg, logger)
	noteService := NewNoteService(storages.Notes, logger)

	return &Services{
		AuthService:    NewAuthValidationService(validator).Wrap(authService),
		NoteService:    NewNoteValidationService(validator).Wrap(noteService),
		AppInfoService: appInfoService,
	}, nil
}
