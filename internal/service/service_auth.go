// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
//
// It orchestrates the identity, one-time code and session lifecycle over the
// storage repositories, the credential primitives and the notifier. It keeps
// no state of its own and is safe for concurrent use.
type authService struct {
	identities store.IdentityRepository
	otps       store.OTPRepository

	credentials crypto.CredentialService
	notifier    adapter.Notifier

	// otpDuration is how long a freshly issued code stays valid.
	otpDuration time.Duration
	now         func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given repositories.
func NewAuthService(
	identities store.IdentityRepository,
	otps store.OTPRepository,
	credentials crypto.CredentialService,
	notifier adapter.Notifier,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		identities:  identities,
		otps:        otps,
		credentials: credentials,
		notifier:    notifier,
		otpDuration: cfg.OTPDuration,
		now:         time.Now,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func upstream(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

// Signup registers a new unverified identity.
//
// Returns:
//   - ErrDuplicateAccount if the email is already registered, including
//     when a concurrent signup wins the race.
//   - ErrValidation if the password is too long to hash.
//   - ErrUpstream on storage or hashing failures.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (string, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	_, err := a.identities.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return "", ErrDuplicateAccount
	case !errors.Is(err, store.ErrIdentityNotFound):
		log.Err(err).Str("func", "*authService.Signup").Msg("identity lookup failed")
		return "", upstream(err)
	}

	hash, err := a.credentials.HashPassword(request.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		// multi-byte passwords can pass the length rule and still exceed 72 bytes
		return "", invalid(&validators.ValidationError{Violations: []string{"password must be at most 72 bytes"}})
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return "", upstream(err)
	}

	identity, err := a.identities.Create(ctx, models.Identity{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return "", ErrDuplicateAccount
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("identity creation failed")
		return "", upstream(err)
	}

	if err = a.issueOTP(ctx, identity.Email); err != nil {
		return "", err
	}

	log.Info().Str("identity_id", identity.ID).Msg("identity registered, verification pending")
	return identity.Email, nil
}

// ResendOTP issues another code for an unverified identity.
//
// Returns ErrIdentityNotFound for an unknown email and ErrAlreadyVerified once
// the identity is verified.
func (a *authService) ResendOTP(ctx context.Context, request models.ResendOTPRequest) error {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	identity, err := a.identities.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResendOTP").Msg("identity lookup failed")
		return upstream(err)
	}

	if identity.IsVerified {
		return ErrAlreadyVerified
	}

	return a.issueOTP(ctx, identity.Email)
}

// issueOTP stores a new code and hands it to the notifier. Delivery failures
// are logged by the notifier and do not fail the call.
func (a *authService) issueOTP(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	record, err := a.otps.Create(ctx, models.OTPRecord{
		Email:     email,
		Code:      a.credentials.GenerateOTP(),
		ExpiresAt: a.now().Add(a.otpDuration),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.issueOTP").Msg("otp creation failed")
		return upstream(err)
	}

	if !a.notifier.SendOTP(ctx, email, record.Code) {
		log.Warn().Str("otp_id", record.ID).Msg("verification code was not delivered")
	}

	return nil
}

// VerifyOTP consumes a matching code and opens a session.
//
// Returns:
//   - ErrInvalidOrExpiredCode when no unconsumed, unexpired code matches.
//   - ErrIdentityNotFound when the code outlived its identity.
//   - ErrUpstream on storage or signing failures.
func (a *authService) VerifyOTP(ctx context.Context, request models.VerifyOTPRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(request.Email)

	record, err := a.otps.FindActive(ctx, email, request.OTP)
	if errors.Is(err, store.ErrOTPNotFound) {
		return models.AuthResult{}, ErrInvalidOrExpiredCode
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyOTP").Msg("otp lookup failed")
		return models.AuthResult{}, upstream(err)
	}

	err = a.otps.MarkConsumed(ctx, record.ID)
	if errors.Is(err, store.ErrOTPNotFound) {
		// purged, or consumed by a concurrent verification
		return models.AuthResult{}, ErrInvalidOrExpiredCode
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyOTP").Msg("otp consumption failed")
		return models.AuthResult{}, upstream(err)
	}

	identity, err := a.identities.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.AuthResult{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyOTP").Msg("identity lookup failed")
		return models.AuthResult{}, upstream(err)
	}

	verified := true
	identity, err = a.identities.Update(ctx, identity.ID, models.IdentityUpdate{IsVerified: &verified})
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.AuthResult{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyOTP").Msg("identity update failed")
		return models.AuthResult{}, upstream(err)
	}

	result, err := a.openSession(ctx, identity)
	if err != nil {
		return models.AuthResult{}, err
	}

	a.notifier.SendWelcome(ctx, identity.Email, identity.Name)

	log.Info().Str("identity_id", identity.ID).Msg("identity verified")
	return result, nil
}

// Login authenticates a verified identity by password.
//
// An unknown email, an identity without a password and a wrong password are
// indistinguishable to the caller (ErrInvalidCredentials). The verification
// check runs only after the password matched.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	identity, err := a.identities.GetByEmail(ctx, normalizeEmail(request.Email))
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("identity lookup failed")
		return models.AuthResult{}, upstream(err)
	}

	if !identity.HasPassword() || !a.credentials.VerifyPassword(request.Password, identity.PasswordHash) {
		return models.AuthResult{}, ErrInvalidCredentials
	}

	if !identity.IsVerified {
		return models.AuthResult{}, ErrUnverifiedAccount
	}

	return a.openSession(ctx, identity)
}

func (a *authService) openSession(ctx context.Context, identity models.Identity) (models.AuthResult, error) {
	token, err := a.credentials.IssueSession(identity)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.openSession").Msg("session issuing failed")
		return models.AuthResult{}, upstream(err)
	}

	return models.AuthResult{Token: token, User: identity.Public()}, nil
}

func (a *authService) FederatedLogin(_ context.Context) (models.AuthResult, error) {
	return models.AuthResult{}, ErrNotImplemented
}

// Profile returns ErrIdentityNotFound when the identity no longer exists.
func (a *authService) Profile(ctx context.Context, identityID string) (models.PublicIdentity, error) {
	identity, err := a.identities.GetByID(ctx, identityID)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.PublicIdentity{}, ErrIdentityNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Profile").Msg("identity lookup failed")
		return models.PublicIdentity{}, upstream(err)
	}

	return identity.Public(), nil
}

// Authenticate verifies token and resolves the identity it was issued for.
// A bad token and a vanished identity both yield ErrUnauthorized.
func (a *authService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	session, ok := a.credentials.VerifySession(token)
	if !ok {
		return models.Session{}, ErrUnauthorized
	}

	identity, err := a.identities.GetByID(ctx, session.IdentityID)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.Session{}, ErrUnauthorized
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Authenticate").Msg("identity lookup failed")
		return models.Session{}, upstream(err)
	}

	return models.Session{IdentityID: identity.ID, Email: identity.Email}, nil
}
