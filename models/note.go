// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a personal text note owned by exactly one [Identity].
type Note struct {
	// ID is the opaque identifier assigned by the storage backend.
	ID string `json:"id"`

	// Title is the non-empty headline of the note.
	Title string `json:"title"`

	// Content is the non-empty body of the note.
	Content string `json:"content"`

	// Category is an optional free-form label.
	Category string `json:"category,omitempty"`

	// UserID is the identifier of the owning identity.
	UserID string `json:"userId"`

	// CreatedAt is the creation moment of the note.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation and is never before CreatedAt.
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether the note belongs to the given identity.
func (n Note) IsOwnedBy(identityID string) bool {
	return n.UserID == identityID
}

// NoteUpdate describes a partial note update.
// Only non-nil fields are applied; UpdatedAt is always refreshed by storage.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Category *string
}

// Apply copies the non-nil fields of u onto note and returns the result.
func (u NoteUpdate) Apply(note Note) Note {
	if u.Title != nil {
		note.Title = *u.Title
	}
	if u.Content != nil {
		note.Content = *u.Content
	}
	if u.Category != nil {
		note.Category = *u.Category
	}
	return note
}
