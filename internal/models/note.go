package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteDB represents a note record in the database.
// Tags are stored as a single space-joined string; no tag contains
// whitespace.
type NoteDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	Title        string    `json:"title" db:"title"`                 // Note title
	Contents     string    `json:"contents" db:"contents"`           // Free text, raw newlines preserved
	Tags         string    `json:"tags" db:"tags"`                   // Space-joined tag list
	DateCreated  time.Time `json:"date_created" db:"date_created"`   // Set once at creation
	DateModified time.Time `json:"date_modified" db:"date_modified"` // Bumped on every edit
	UserID       uuid.UUID `json:"-" db:"user_id"`                   // Owner
}

// NoteEvent is published to Kafka after a successful note mutation.
type NoteEvent struct {
	EventID   string `json:"event_id"`
	NoteID    int64  `json:"note_id"`
	UserID    string `json:"user_id"`
	Operation string `json:"operation"` // create, update or delete
	Timestamp int64  `json:"timestamp"`
}
