package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// AuthValidationService rejects malformed auth requests before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Signup(ctx context.Context, request models.SignupRequest) (string, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return "", invalid(err)
	}

	return v.inner.Signup(ctx, request)
}

func (v *AuthValidationService) ResendOTP(ctx context.Context, request models.ResendOTPRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return invalid(err)
	}

	return v.inner.ResendOTP(ctx, request)
}

func (v *AuthValidationService) VerifyOTP(ctx context.Context, request models.VerifyOTPRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AuthResult{}, invalid(err)
	}

	return v.inner.VerifyOTP(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AuthResult{}, invalid(err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) FederatedLogin(ctx context.Context) (models.AuthResult, error) {
	return v.inner.FederatedLogin(ctx)
}

func (v *AuthValidationService) Profile(ctx context.Context, identityID string) (models.PublicIdentity, error) {
	return v.inner.Profile(ctx, identityID)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	return v.inner.Authenticate(ctx, token)
}

// NoteValidationService rejects notes without title or content.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService(validator validators.Validator) NoteServiceWrapper {
	return &NoteValidationService{validator: validator}
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *NoteValidationService) Create(ctx context.Context, ownerID string, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Note{}, invalid(err)
	}

	return v.inner.Create(ctx, ownerID, input)
}

func (v *NoteValidationService) Update(ctx context.Context, ownerID, noteID string, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Note{}, invalid(err)
	}

	return v.inner.Update(ctx, ownerID, noteID, input)
}

func (v *NoteValidationService) Delete(ctx context.Context, ownerID, noteID string) error {
	return v.inner.Delete(ctx, ownerID, noteID)
}
