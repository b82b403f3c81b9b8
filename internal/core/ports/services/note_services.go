package services

import (
	"context"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/budgetbuddy/bb_backend/internal/dto"
)

// NoteSvcFacade defines operations for managing a user's notes.
type NoteSvcFacade interface {
	// CreateNote persists a new note.
	CreateNote(ctx context.Context, userID string, req dto.CreateNoteRequest) (*domain.Note, error)

	// GetNoteByID retrieves a single note owned by the user.
	GetNoteByID(ctx context.Context, userID string, noteID string) (*domain.Note, error)

	// ListNotes retrieves the user's notes, newest first, optionally filtered
	// by category.
	ListNotes(ctx context.Context, userID string, params dto.ListNotesParams) ([]domain.Note, error)

	// SearchNotes retrieves notes matching the query in title or content.
	// An empty query returns all notes.
	SearchNotes(ctx context.Context, userID string, query string) ([]domain.Note, error)

	// UpdateNote applies a partial update to a note.
	UpdateNote(ctx context.Context, userID string, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error)

	// DeleteNote removes a note.
	DeleteNote(ctx context.Context, userID string, noteID string) error
}
