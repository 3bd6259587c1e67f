package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/glyphspeak/internal/storage"
)

// TranscriptRepository stores transcripts.
type TranscriptRepository struct {
	db *pgxpool.Pool
}

// NewTranscriptRepository creates a TranscriptRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewTranscriptRepository(db *pgxpool.Pool) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Record inserts a transcript under a fresh random id.
//
// Precondition: op must be non-empty.
// Postcondition: Returns the stored Transcript with ID and CreatedAt set.
func (r *TranscriptRepository) Record(ctx context.Context, op, text string) (storage.Transcript, error) {
	if op == "" {
		return storage.Transcript{}, fmt.Errorf("recording transcript: %w", storage.ErrEmptyOp)
	}
	tr := storage.Transcript{ID: uuid.New(), Op: op, Text: text}
	err := r.db.QueryRow(ctx,
		`INSERT INTO transcripts (id, op, text)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		tr.ID.String(), op, text,
	).Scan(&tr.CreatedAt)
	if err != nil {
		return storage.Transcript{}, fmt.Errorf("inserting transcript: %w", err)
	}
	return tr, nil
}

// Get retrieves a transcript by id.
//
// Postcondition: Returns the Transcript or storage.ErrTranscriptNotFound.
func (r *TranscriptRepository) Get(ctx context.Context, id uuid.UUID) (storage.Transcript, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id::text, op, text, created_at FROM transcripts WHERE id = $1`,
		id.String(),
	)
	tr, err := scanTranscript(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.Transcript{}, storage.ErrTranscriptNotFound
		}
		return storage.Transcript{}, fmt.Errorf("querying transcript %s: %w", id, err)
	}
	return tr, nil
}

// Recent returns at most limit transcripts, newest first.
//
// Precondition: limit must be >= 1.
func (r *TranscriptRepository) Recent(ctx context.Context, limit int) ([]storage.Transcript, error) {
	if limit < 1 {
		return nil, fmt.Errorf("listing transcripts: limit must be >= 1, got %d", limit)
	}
	rows, err := r.db.Query(ctx,
		`SELECT id::text, op, text, created_at FROM transcripts
		 ORDER BY seq DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	defer rows.Close()

	var out []storage.Transcript
	for rows.Next() {
		tr, err := scanTranscript(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transcript: %w", err)
		}
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transcripts: %w", err)
	}
	return out, nil
}

func scanTranscript(row pgx.Row) (storage.Transcript, error) {
	var (
		tr storage.Transcript
		id string
	)
	if err := row.Scan(&id, &tr.Op, &tr.Text, &tr.CreatedAt); err != nil {
		return storage.Transcript{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return storage.Transcript{}, fmt.Errorf("parsing transcript id %q: %w", id, err)
	}
	tr.ID = parsed
	return tr, nil
}
