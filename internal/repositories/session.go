package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/xeliz/tagged/internal/logger"
)

// SessionReadRepository handles session read operations.
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// Exists reports whether a session row with the token exists, active or not.
// Used by the token collision loop at login.
func (r *SessionReadRepository) Exists(ctx context.Context, token string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM sessions WHERE token = $1)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, token)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", exists,
		"error", err,
	)

	return exists, err
}

// GetUserID resolves an active session token to its owning user id.
// Returns nil when the token is absent, inactive, or references a user that
// no longer exists.
func (r *SessionReadRepository) GetUserID(ctx context.Context, token string) (*uuid.UUID, error) {
	const query = `
		SELECT sessions.user_id
		FROM sessions
		JOIN users ON users.user_id = sessions.user_id
		WHERE sessions.token = $1 AND sessions.active = TRUE
	`

	var userID uuid.UUID
	err := r.db.GetContext(ctx, &userID, query, token)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", userID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &userID, nil
}

// SessionWriteRepository handles session write operations.
type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save inserts a new active session row.
func (r *SessionWriteRepository) Save(ctx context.Context, token string, userID uuid.UUID) error {
	const query = `
		INSERT INTO sessions (token, user_id, active)
		VALUES ($1, $2, TRUE)
	`

	_, err := r.db.ExecContext(ctx, query, token, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}

// Deactivate flips the session's active flag to false. Updating an unknown
// or already-inactive token affects zero rows and is not an error.
func (r *SessionWriteRepository) Deactivate(ctx context.Context, token string) error {
	const query = `
		UPDATE sessions SET active = FALSE WHERE token = $1
	`

	res, err := r.db.ExecContext(ctx, query, token)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"result", rowsAffected,
		"error", err,
	)

	return err
}
