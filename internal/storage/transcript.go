// Package storage holds the record types shared by the transcript backends.
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Transcript is one recorded description.
type Transcript struct {
	ID        uuid.UUID
	Op        string
	Text      string
	CreatedAt time.Time
}

// ErrTranscriptNotFound is returned when a transcript lookup yields no results.
var ErrTranscriptNotFound = errors.New("transcript not found")

// ErrEmptyOp is returned when recording a transcript without an operation.
var ErrEmptyOp = errors.New("op must not be empty")
