// Package sqlite stores transcripts in a single SQLite file for deployments
// without PostgreSQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/cory-johannsen/glyphspeak/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS transcripts (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	op         TEXT NOT NULL,
	text       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

type transcriptRow struct {
	ID        string `db:"id"`
	Op        string `db:"op"`
	Text      string `db:"text"`
	CreatedAt string `db:"created_at"`
}

// TranscriptRepository stores transcripts in SQLite.
type TranscriptRepository struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open opens or creates the database at path and ensures the schema exists.
//
// Precondition: path's directory must exist.
// Postcondition: Returns a ready repository or a non-nil error.
func Open(path string) (*TranscriptRepository, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One writer at a time; also keeps ":memory:" on a single database.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &TranscriptRepository{conn: conn, now: time.Now}, nil
}

// Close closes the database connection.
func (r *TranscriptRepository) Close() error {
	return r.conn.Close()
}

// Record inserts a transcript under a fresh random id.
//
// Precondition: op must be non-empty.
func (r *TranscriptRepository) Record(ctx context.Context, op, text string) (storage.Transcript, error) {
	if op == "" {
		return storage.Transcript{}, fmt.Errorf("recording transcript: %w", storage.ErrEmptyOp)
	}
	tr := storage.Transcript{ID: uuid.New(), Op: op, Text: text, CreatedAt: r.now().UTC()}
	_, err := r.conn.ExecContext(ctx,
		"INSERT INTO transcripts (id, op, text, created_at) VALUES (?, ?, ?, ?)",
		tr.ID.String(), op, text, tr.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return storage.Transcript{}, fmt.Errorf("inserting transcript: %w", err)
	}
	return tr, nil
}

// Get retrieves a transcript by id.
//
// Postcondition: Returns the Transcript or storage.ErrTranscriptNotFound.
func (r *TranscriptRepository) Get(ctx context.Context, id uuid.UUID) (storage.Transcript, error) {
	var row transcriptRow
	err := r.conn.GetContext(ctx, &row,
		"SELECT id, op, text, created_at FROM transcripts WHERE id = ?",
		id.String(),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Transcript{}, storage.ErrTranscriptNotFound
		}
		return storage.Transcript{}, fmt.Errorf("querying transcript %s: %w", id, err)
	}
	return row.transcript()
}

// Recent returns at most limit transcripts, newest first.
//
// Precondition: limit must be >= 1.
func (r *TranscriptRepository) Recent(ctx context.Context, limit int) ([]storage.Transcript, error) {
	if limit < 1 {
		return nil, fmt.Errorf("listing transcripts: limit must be >= 1, got %d", limit)
	}
	var rows []transcriptRow
	err := r.conn.SelectContext(ctx, &rows,
		"SELECT id, op, text, created_at FROM transcripts ORDER BY seq DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	out := make([]storage.Transcript, 0, len(rows))
	for _, row := range rows {
		tr, err := row.transcript()
		if err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, nil
}

func (row transcriptRow) transcript() (storage.Transcript, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return storage.Transcript{}, fmt.Errorf("parsing transcript id %q: %w", row.ID, err)
	}
	created, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return storage.Transcript{}, fmt.Errorf("parsing transcript %s time: %w", row.ID, err)
	}
	return storage.Transcript{ID: id, Op: row.Op, Text: row.Text, CreatedAt: created}, nil
}
