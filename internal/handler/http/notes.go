package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const msgNoteDeleted = "Note deleted successfully"

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetIdentityIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized, nil)
		return
	}

	notes, err := h.services.NoteService.List(ctx, ownerID)
	if err != nil {
		writeError(w, r, err, map[error]string{service.ErrUpstream: "Failed to fetch notes"})
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetIdentityIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized, nil)
		return
	}

	var input models.NoteInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, nil)
		return
	}

	note, err := h.services.NoteService.Create(ctx, ownerID, input)
	if err != nil {
		writeError(w, r, err, map[error]string{service.ErrUpstream: "Failed to create note"})
		return
	}

	log.Debug().Str("note_id", note.ID).Msg("note created")
	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetIdentityIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized, nil)
		return
	}

	var input models.NoteInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, nil)
		return
	}

	note, err := h.services.NoteService.Update(ctx, ownerID, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, r, err, map[error]string{
			service.ErrForbidden: "Not authorized to update this note",
			service.ErrUpstream:  "Failed to update note",
		})
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetIdentityIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthorized, nil)
		return
	}

	if err := h.services.NoteService.Delete(ctx, ownerID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, map[error]string{
			service.ErrForbidden: "Not authorized to delete this note",
			service.ErrUpstream:  "Failed to delete note",
		})
		return
	}

	utils.WriteMessage(w, msgNoteDeleted, http.StatusOK)
}
