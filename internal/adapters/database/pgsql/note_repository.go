package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/budgetbuddy/bb_backend/internal/apperrors"
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	portsrepo "github.com/budgetbuddy/bb_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const noteColumns = `note_id, user_id, title, content, category, created_at, last_updated_at`

// NoteRepository provides PostgreSQL persistence for notes.
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository creates a new note repository.
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db}
}

// Ensure NoteRepository implements the facade.
var _ portsrepo.NoteRepositoryFacade = (*NoteRepository)(nil)

func (r *NoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	query := `
        INSERT INTO notes (` + noteColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		note.NoteID,
		note.UserID,
		note.Title,
		note.Content,
		note.Category,
		note.CreatedAt,
		note.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

func (r *NoteRepository) FindNoteByID(ctx context.Context, userID string, noteID string) (*domain.Note, error) {
	query := `
        SELECT ` + noteColumns + `
        FROM notes
        WHERE user_id = $1 AND note_id = $2;
    `
	note, err := scanNote(r.db.QueryRow(ctx, query, userID, noteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note by ID: %w", err)
	}
	return note, nil
}

func (r *NoteRepository) FindNotes(ctx context.Context, userID string, category string, limit int) ([]domain.Note, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1`)
	args := []interface{}{userID}

	if category != "" {
		args = append(args, category)
		sb.WriteString(` AND category = $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY created_at DESC, note_id ASC`)
	if limit > 0 {
		args = append(args, limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}

	return r.queryNotes(ctx, sb.String(), args...)
}

func (r *NoteRepository) SearchNotes(ctx context.Context, userID string, query string) ([]domain.Note, error) {
	// ILIKE gives case-insensitive substring matching; % and _ in the user
	// query are escaped so they match literally.
	pattern := "%" + escapeLikePattern(query) + "%"
	sql := `
        SELECT ` + noteColumns + `
        FROM notes
        WHERE user_id = $1 AND (title ILIKE $2 OR content ILIKE $2)
        ORDER BY created_at DESC, note_id ASC;
    `
	return r.queryNotes(ctx, sql, userID, pattern)
}

func (r *NoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	query := `
        UPDATE notes
        SET title = $1, content = $2, category = $3, last_updated_at = $4
        WHERE user_id = $5 AND note_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		note.Title,
		note.Content,
		note.Category,
		note.LastUpdatedAt,
		note.UserID,
		note.NoteID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) DeleteNote(ctx context.Context, userID string, noteID string) error {
	query := `
        DELETE FROM notes
        WHERE user_id = $1 AND note_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, userID, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) queryNotes(ctx context.Context, sql string, args ...interface{}) ([]domain.Note, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, *note)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", rows.Err())
	}
	return notes, nil
}

// scanNote reads one note from a row.
func scanNote(row pgx.Row) (*domain.Note, error) {
	var note domain.Note
	err := row.Scan(
		&note.NoteID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Category,
		&note.CreatedAt,
		&note.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// escapeLikePattern escapes LIKE metacharacters in user-supplied text.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
