// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// memoryDB is the volatile backing store shared by the in-memory
// repositories. Each map has its own lock so that every repository call is
// atomic with respect to its mapping. Values are stored and returned by
// copy; callers never share state with the store.
type memoryDB struct {
	seq atomic.Int64
	now func() time.Time

	identitiesMu sync.RWMutex
	identities   map[string]models.Identity
	emailIndex   map[string]string

	notesMu sync.RWMutex
	notes   map[string]models.Note

	otpsMu sync.RWMutex
	otps   map[string]models.OTPRecord
}

func newMemoryDB(now func() time.Time) *memoryDB {
	if now == nil {
		now = time.Now
	}

	return &memoryDB{
		now:        now,
		identities: make(map[string]models.Identity),
		emailIndex: make(map[string]string),
		notes:      make(map[string]models.Note),
		otps:       make(map[string]models.OTPRecord),
	}
}

// nextID returns "1", "2", ... shared across all record kinds.
func (m *memoryDB) nextID() string {
	return strconv.FormatInt(m.seq.Add(1), 10)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ─────────────────────────────────────────────
// Identities
// ─────────────────────────────────────────────

type memoryIdentityRepository struct {
	db *memoryDB
}

func (r *memoryIdentityRepository) GetByID(_ context.Context, id string) (models.Identity, error) {
	r.db.identitiesMu.RLock()
	defer r.db.identitiesMu.RUnlock()

	identity, ok := r.db.identities[id]
	if !ok {
		return models.Identity{}, ErrIdentityNotFound
	}

	return identity, nil
}

func (r *memoryIdentityRepository) GetByEmail(_ context.Context, email string) (models.Identity, error) {
	r.db.identitiesMu.RLock()
	defer r.db.identitiesMu.RUnlock()

	id, ok := r.db.emailIndex[normalizeEmail(email)]
	if !ok {
		return models.Identity{}, ErrIdentityNotFound
	}

	return r.db.identities[id], nil
}

func (r *memoryIdentityRepository) GetByFederatedID(_ context.Context, federatedID string) (models.Identity, error) {
	if federatedID == "" {
		return models.Identity{}, ErrIdentityNotFound
	}

	r.db.identitiesMu.RLock()
	defer r.db.identitiesMu.RUnlock()

	for _, identity := range r.db.identities {
		if identity.FederatedID == federatedID {
			return identity, nil
		}
	}

	return models.Identity{}, ErrIdentityNotFound
}

func (r *memoryIdentityRepository) Create(_ context.Context, identity models.Identity) (models.Identity, error) {
	identity.Email = normalizeEmail(identity.Email)

	r.db.identitiesMu.Lock()
	defer r.db.identitiesMu.Unlock()

	if _, taken := r.db.emailIndex[identity.Email]; taken {
		return models.Identity{}, ErrEmailAlreadyExists
	}

	identity.ID = r.db.nextID()
	identity.CreatedAt = r.db.now()

	r.db.identities[identity.ID] = identity
	r.db.emailIndex[identity.Email] = identity.ID

	return identity, nil
}

func (r *memoryIdentityRepository) Update(_ context.Context, id string, update models.IdentityUpdate) (models.Identity, error) {
	r.db.identitiesMu.Lock()
	defer r.db.identitiesMu.Unlock()

	identity, ok := r.db.identities[id]
	if !ok {
		return models.Identity{}, ErrIdentityNotFound
	}

	identity = update.Apply(identity)
	r.db.identities[id] = identity

	return identity, nil
}

// ─────────────────────────────────────────────
// Notes
// ─────────────────────────────────────────────

type memoryNoteRepository struct {
	db *memoryDB
}

func (r *memoryNoteRepository) ListByOwner(_ context.Context, ownerID string) ([]models.Note, error) {
	r.db.notesMu.RLock()
	notes := make([]models.Note, 0)
	for _, note := range r.db.notes {
		if note.IsOwnedBy(ownerID) {
			notes = append(notes, note)
		}
	}
	r.db.notesMu.RUnlock()

	slices.SortFunc(notes, func(a, b models.Note) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		// later ids first on equal timestamps
		if c := cmp.Compare(len(b.ID), len(a.ID)); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})

	return notes, nil
}

func (r *memoryNoteRepository) GetByID(_ context.Context, id string) (models.Note, error) {
	r.db.notesMu.RLock()
	defer r.db.notesMu.RUnlock()

	note, ok := r.db.notes[id]
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	return note, nil
}

func (r *memoryNoteRepository) Create(_ context.Context, note models.Note) (models.Note, error) {
	now := r.db.now()
	note.ID = r.db.nextID()
	note.CreatedAt = now
	note.UpdatedAt = now

	r.db.notesMu.Lock()
	r.db.notes[note.ID] = note
	r.db.notesMu.Unlock()

	return note, nil
}

func (r *memoryNoteRepository) Update(_ context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	r.db.notesMu.Lock()
	defer r.db.notesMu.Unlock()

	note, ok := r.db.notes[id]
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	note = update.Apply(note)
	note.UpdatedAt = r.db.now()
	if note.UpdatedAt.Before(note.CreatedAt) {
		note.UpdatedAt = note.CreatedAt
	}
	r.db.notes[id] = note

	return note, nil
}

func (r *memoryNoteRepository) Delete(_ context.Context, id string) (bool, error) {
	r.db.notesMu.Lock()
	defer r.db.notesMu.Unlock()

	if _, ok := r.db.notes[id]; !ok {
		return false, nil
	}
	delete(r.db.notes, id)

	return true, nil
}

// ─────────────────────────────────────────────
// One-time codes
// ─────────────────────────────────────────────

type memoryOTPRepository struct {
	db *memoryDB
}

func (r *memoryOTPRepository) Create(_ context.Context, record models.OTPRecord) (models.OTPRecord, error) {
	record.ID = r.db.nextID()
	record.Email = normalizeEmail(record.Email)
	record.CreatedAt = r.db.now()

	r.db.otpsMu.Lock()
	r.db.otps[record.ID] = record
	r.db.otpsMu.Unlock()

	return record, nil
}

func (r *memoryOTPRepository) FindActive(_ context.Context, email, code string) (models.OTPRecord, error) {
	email = normalizeEmail(email)
	now := r.db.now()

	r.db.otpsMu.RLock()
	defer r.db.otpsMu.RUnlock()

	for _, record := range r.db.otps {
		if record.Matches(email, code) && record.IsActiveAt(now) {
			return record, nil
		}
	}

	return models.OTPRecord{}, ErrOTPNotFound
}

func (r *memoryOTPRepository) MarkConsumed(_ context.Context, id string) error {
	r.db.otpsMu.Lock()
	defer r.db.otpsMu.Unlock()

	record, ok := r.db.otps[id]
	if !ok || record.Consumed {
		return ErrOTPNotFound
	}
	record.Consumed = true
	r.db.otps[id] = record

	return nil
}

func (r *memoryOTPRepository) PurgeExpired(_ context.Context) (int64, error) {
	now := r.db.now()

	r.db.otpsMu.Lock()
	defer r.db.otpsMu.Unlock()

	var purged int64
	for id, record := range r.db.otps {
		if !record.ExpiresAt.After(now) {
			delete(r.db.otps, id)
			purged++
		}
	}

	return purged, nil
}
