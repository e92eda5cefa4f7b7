// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// IdentityRepository persists user accounts. Emails are matched
// case-insensitively and stored lowercased.
type IdentityRepository interface {
	// GetByID returns [ErrIdentityNotFound] when no identity has the id.
	GetByID(ctx context.Context, id string) (models.Identity, error)

	// GetByEmail returns [ErrIdentityNotFound] when no identity has the email.
	GetByEmail(ctx context.Context, email string) (models.Identity, error)

	// GetByFederatedID returns [ErrIdentityNotFound] when no identity is linked
	// to the external id.
	GetByFederatedID(ctx context.Context, federatedID string) (models.Identity, error)

	// Create assigns ID and CreatedAt and returns the stored identity.
	// Returns [ErrEmailAlreadyExists] if the email is taken.
	Create(ctx context.Context, identity models.Identity) (models.Identity, error)

	// Update applies the non-nil fields of update and returns the result.
	// Returns [ErrIdentityNotFound] when no identity has the id.
	Update(ctx context.Context, id string, update models.IdentityUpdate) (models.Identity, error)
}

// NoteRepository persists notes.
type NoteRepository interface {
	// ListByOwner returns the notes of an identity, most recently updated
	// first. An identity without notes yields an empty slice.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error)

	// GetByID returns [ErrNoteNotFound] when no note has the id.
	GetByID(ctx context.Context, id string) (models.Note, error)

	// Create assigns ID, CreatedAt and UpdatedAt and returns the stored note.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// Update applies the non-nil fields of update, refreshes UpdatedAt and
	// returns the result. Returns [ErrNoteNotFound] when no note has the id.
	Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	// Delete removes the note and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// OTPRepository persists one-time codes.
type OTPRepository interface {
	// Create assigns ID and CreatedAt and returns the stored record.
	Create(ctx context.Context, record models.OTPRecord) (models.OTPRecord, error)

	// FindActive returns an unconsumed, unexpired record matching email and
	// code, or [ErrOTPNotFound].
	FindActive(ctx context.Context, email, code string) (models.OTPRecord, error)

	// MarkConsumed flags the record as used. Returns [ErrOTPNotFound] when no
	// record has the id or it was already consumed; of several concurrent
	// calls for one record exactly one succeeds.
	MarkConsumed(ctx context.Context, id string) error

	// PurgeExpired deletes records whose expiry has passed and returns how
	// many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
