// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository] over the "notes" table.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
		now:    utcNow,
	}
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note        models.Note
		id, ownerID int64
	)

	err := row.Scan(&id, &note.Title, &note.Content, &note.Category, &ownerID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return models.Note{}, err
	}
	note.ID = formatID(id)
	note.UserID = formatID(ownerID)

	return note, nil
}

// ListByOwner implements [NoteRepository].
func (r *noteRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes := make([]models.Note, 0)
	key, ok := parseID(ownerID)
	if !ok {
		return notes, nil
	}

	query, args, err := buildListNotesQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListByOwner").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListByOwner").
			Str("user_id", ownerID).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.ListByOwner").
				Str("user_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.ListByOwner").
			Str("user_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetByID implements [NoteRepository].
func (r *noteRepository) GetByID(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	key, ok := parseID(id)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	query, args, err := buildSelectNoteQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetByID").Msg("failed to create query")
		return models.Note{}, err
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetByID").Str("note_id", id).Msg("error selecting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// Create implements [NoteRepository]. A note referencing an unknown owner
// violates the foreign key and is reported as [ErrIdentityNotFound].
func (r *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	ownerID, ok := parseID(note.UserID)
	if !ok {
		return models.Note{}, ErrIdentityNotFound
	}

	query, args, err := buildInsertNoteQuery(note, ownerID, r.now())
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Create").Msg("failed to create query")
		return models.Note{}, err
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Note{}, ErrIdentityNotFound
		}
		log.Err(err).Str("func", "*noteRepository.Create").
			Str("user_id", note.UserID).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// Update implements [NoteRepository].
func (r *noteRepository) Update(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	key, ok := parseID(id)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	query, args, err := buildUpdateNoteQuery(key, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Update").Msg("failed to create query")
		return models.Note{}, err
	}

	updated, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Update").
			Str("note_id", id).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// Delete implements [NoteRepository].
func (r *noteRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	key, ok := parseID(id)
	if !ok {
		return false, nil
	}

	query, args, err := buildDeleteNoteQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("failed to create query")
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").
			Str("note_id", id).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error deleting note")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
