package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionDB represents a session record in the database.
// A session authenticates requests only while Active is true; revocation
// flips the flag, rows are never deleted.
type SessionDB struct {
	Token     string    `json:"token" db:"token"`           // Opaque token, primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Active    bool      `json:"active" db:"active"`         // False once revoked
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
