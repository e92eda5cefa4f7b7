// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// identityRepository is the PostgreSQL-backed implementation of
// [IdentityRepository] over the "identities" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type identityRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewIdentityRepository constructs an [IdentityRepository] backed by the
// provided database connection and logger.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		db:     db,
		logger: logger,
		now:    utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func scanIdentity(row rowScanner) (models.Identity, error) {
	var (
		identity models.Identity
		id       int64
	)

	err := row.Scan(&id, &identity.Name, &identity.Email, &identity.PasswordHash,
		&identity.FederatedID, &identity.IsVerified, &identity.CreatedAt)
	if err != nil {
		return models.Identity{}, err
	}
	identity.ID = formatID(id)

	return identity, nil
}

// GetByID implements [IdentityRepository].
func (r *identityRepository) GetByID(ctx context.Context, id string) (models.Identity, error) {
	key, ok := parseID(id)
	if !ok {
		return models.Identity{}, ErrIdentityNotFound
	}

	return r.getOne(ctx, "*identityRepository.GetByID", sq.Eq{"id": key})
}

// GetByEmail implements [IdentityRepository].
func (r *identityRepository) GetByEmail(ctx context.Context, email string) (models.Identity, error) {
	return r.getOne(ctx, "*identityRepository.GetByEmail", sq.Eq{"email": normalizeEmail(email)})
}

// GetByFederatedID implements [IdentityRepository].
func (r *identityRepository) GetByFederatedID(ctx context.Context, federatedID string) (models.Identity, error) {
	if federatedID == "" {
		return models.Identity{}, ErrIdentityNotFound
	}

	return r.getOne(ctx, "*identityRepository.GetByFederatedID", sq.Eq{"federated_id": federatedID})
}

func (r *identityRepository) getOne(ctx context.Context, fn string, where sq.Sqlizer) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIdentityQuery(where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return models.Identity{}, err
	}

	identity, err := scanIdentity(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Bool("retryable", r.db.isRetryable(err)).Msg("error selecting identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return identity, nil
}

// Create implements [IdentityRepository].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) -> [ErrEmailAlreadyExists].
//   - Any other driver-level error -> wrapped [ErrExecutingQuery].
func (r *identityRepository) Create(ctx context.Context, identity models.Identity) (models.Identity, error) {
	log := logger.FromContext(ctx)
	identity.Email = normalizeEmail(identity.Email)

	query, args, err := buildInsertIdentityQuery(identity, r.now())
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.Create").Msg("failed to create query")
		return models.Identity{}, err
	}

	created, err := scanIdentity(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Identity{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*identityRepository.Create").
				Bool("retryable", r.db.isRetryable(err)).
				Msg("error inserting identity")
			return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// Update implements [IdentityRepository]. An empty update only re-reads the
// identity.
func (r *identityRepository) Update(ctx context.Context, id string, update models.IdentityUpdate) (models.Identity, error) {
	log := logger.FromContext(ctx)

	key, ok := parseID(id)
	if !ok {
		return models.Identity{}, ErrIdentityNotFound
	}
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query, args, err := buildUpdateIdentityQuery(key, update)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.Update").Msg("failed to create query")
		return models.Identity{}, err
	}

	updated, err := scanIdentity(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.Update").
			Str("identity_id", id).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error updating identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}
