// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storage backends reported by [Storages.Backend].
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Storages groups the repositories of one backend, chosen once at startup.
type Storages struct {
	Identities IdentityRepository
	Notes      NoteRepository
	OTPs       OTPRepository

	backend string
	db      *DB
}

// NewMemoryStorages returns repositories over a fresh volatile store. All
// data is lost when the process exits.
func NewMemoryStorages() *Storages {
	return newMemoryStorages(newMemoryDB(nil))
}

func newMemoryStorages(db *memoryDB) *Storages {
	return &Storages{
		Identities: &memoryIdentityRepository{db: db},
		Notes:      &memoryNoteRepository{db: db},
		OTPs:       &memoryOTPRepository{db: db},
		backend:    BackendMemory,
	}
}

// NewPostgresStorages returns repositories over an open PostgreSQL pool.
// Closing the returned Storages closes db.
func NewPostgresStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Identities: NewIdentityRepository(db, log),
		Notes:      NewNoteRepository(db, log),
		OTPs:       NewOTPRepository(db, log),
		backend:    BackendPostgres,
		db:         db,
	}
}

// NewStorages selects the storage backend:
//   - an empty DSN selects the memory store;
//   - a reachable DSN is migrated and selects PostgreSQL;
//   - an unreachable DSN (or a failed migration) is fatal in production and
//     falls back to the memory store with a warning otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, production bool, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("backend", BackendMemory).Msg("no database configured, using in-memory storage")
		return NewMemoryStorages(), nil
	}

	db, err := openPostgres(ctx, cfg.DB, log)
	if err == nil {
		log.Info().Str("backend", BackendPostgres).Msg("using postgres storage")
		return NewPostgresStorages(db, log), nil
	}

	if production {
		return nil, fmt.Errorf("error initialising storage: %w", err)
	}

	log.Warn().Err(err).Str("backend", BackendMemory).
		Msg("database unavailable, falling back to in-memory storage")
	return NewMemoryStorages(), nil
}

func openPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Backend reports which backend the repositories use.
func (s *Storages) Backend() string {
	return s.backend
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
