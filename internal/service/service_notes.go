package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	notes store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{notes: notes, logger: logger}
}

func (s *noteService) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	notes, err := s.notes.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.List").Str("user_id", ownerID).Msg("listing notes failed")
		return nil, upstream(err)
	}

	return notes, nil
}

func (s *noteService) Create(ctx context.Context, ownerID string, input models.NoteInput) (models.Note, error) {
	note := models.Note{
		Title:   input.Title,
		Content: input.Content,
		UserID:  ownerID,
	}
	if input.Category != nil {
		note.Category = *input.Category
	}

	created, err := s.notes.Create(ctx, note)
	if errors.Is(err, store.ErrIdentityNotFound) {
		return models.Note{}, ErrIdentityNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Create").Str("user_id", ownerID).Msg("creating note failed")
		return models.Note{}, upstream(err)
	}

	return created, nil
}

// Update replaces title and content of an owned note. The category changes
// only when the input carries one.
func (s *noteService) Update(ctx context.Context, ownerID, noteID string, input models.NoteInput) (models.Note, error) {
	if err := s.checkOwnership(ctx, ownerID, noteID); err != nil {
		return models.Note{}, err
	}

	updated, err := s.notes.Update(ctx, noteID, input.Update())
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Update").Str("note_id", noteID).Msg("updating note failed")
		return models.Note{}, upstream(err)
	}

	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, ownerID, noteID string) error {
	if err := s.checkOwnership(ctx, ownerID, noteID); err != nil {
		return err
	}

	deleted, err := s.notes.Delete(ctx, noteID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Delete").Str("note_id", noteID).Msg("deleting note failed")
		return upstream(err)
	}
	if !deleted {
		return ErrNoteNotFound
	}

	return nil
}

// checkOwnership returns ErrNoteNotFound for a missing note and ErrForbidden
// for a note of another identity.
func (s *noteService) checkOwnership(ctx context.Context, ownerID, noteID string) error {
	note, err := s.notes.GetByID(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.checkOwnership").Str("note_id", noteID).Msg("note lookup failed")
		return upstream(err)
	}

	if !note.IsOwnedBy(ownerID) {
		logger.FromContext(ctx).Warn().Str("note_id", noteID).Str("user_id", ownerID).Msg("access to foreign note denied")
		return ErrForbidden
	}

	return nil
}
