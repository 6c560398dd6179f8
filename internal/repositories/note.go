package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/models"
)

const noteColumns = "id, title, contents, date_created, tags, date_modified, user_id"

// NoteWriteRepository handles note write operations. Writes go through the
// request transaction when one is present in the context.
type NoteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNoteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NoteWriteRepository {
	return &NoteWriteRepository{db: db, txGetter: txGetter}
}

func (r *NoteWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a note. Both timestamps take the same statement-time NOW().
func (r *NoteWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, contents, tags string) (int64, error) {
	const query = `
		INSERT INTO notes (title, contents, date_created, tags, date_modified, user_id)
		VALUES ($1, $2, NOW(), $3, NOW(), $4)
		RETURNING id
	`

	var noteID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &noteID, query, title, contents, tags, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{title, tags, userID},
		"result", noteID,
		"error", err,
	)

	return noteID, err
}

// Update rewrites an owned note and bumps date_modified. date_created is
// never touched. Returns false when no owned row matched.
func (r *NoteWriteRepository) Update(ctx context.Context, userID uuid.UUID, noteID int64, title, contents, tags string) (bool, error) {
	const query = `
		UPDATE notes
		SET title = $1, contents = $2, tags = $3, date_modified = NOW()
		WHERE id = $4 AND user_id = $5
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, title, contents, tags, noteID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{title, tags, noteID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// Delete removes an owned note. Returns false when no owned row matched.
func (r *NoteWriteRepository) Delete(ctx context.Context, userID uuid.UUID, noteID int64) (bool, error) {
	const query = `
		DELETE FROM notes WHERE id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, noteID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{noteID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// NoteReadRepository handles note read operations. Every query is scoped to
// the owning user.
type NoteReadRepository struct {
	db *sqlx.DB
}

func NewNoteReadRepository(db *sqlx.DB) *NoteReadRepository {
	return &NoteReadRepository{db: db}
}

// GetByID returns the owned note, or nil when the id does not exist or
// belongs to someone else.
func (r *NoteReadRepository) GetByID(ctx context.Context, userID uuid.UUID, noteID int64) (*models.NoteDB, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE id = $1 AND user_id = $2
	`

	var note models.NoteDB
	err := r.db.GetContext(ctx, &note, query, noteID, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{noteID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// ListRecent returns the user's most recently modified notes, newest first.
func (r *NoteReadRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.NoteDB, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1
		ORDER BY date_modified DESC
		LIMIT $2
	`

	var notes []models.NoteDB
	err := r.db.SelectContext(ctx, &notes, query, userID, limit)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(notes),
		"error", err,
	)

	return notes, err
}

// ListAll returns every note of the user, newest modification first.
func (r *NoteReadRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]models.NoteDB, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1
		ORDER BY date_modified DESC
	`

	var notes []models.NoteDB
	err := r.db.SelectContext(ctx, &notes, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notes),
		"error", err,
	)

	return notes, err
}

// ListAfter returns the user's notes with id greater than afterID, highest
// id first. Used by sync clients to fetch what they have not seen yet.
func (r *NoteReadRepository) ListAfter(ctx context.Context, userID uuid.UUID, afterID int64) ([]models.NoteDB, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE id > $1 AND user_id = $2
		ORDER BY id DESC
	`

	var notes []models.NoteDB
	err := r.db.SelectContext(ctx, &notes, query, afterID, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{afterID, userID},
		"result", len(notes),
		"error", err,
	)

	return notes, err
}

// GetTagStrings returns the raw space-joined tag column of every owned note.
func (r *NoteReadRepository) GetTagStrings(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const query = `
		SELECT tags FROM notes WHERE user_id = $1
	`

	var tags []string
	err := r.db.SelectContext(ctx, &tags, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(tags),
		"error", err,
	)

	return tags, err
}

// Search returns the user's notes matching every keyword (against title or
// contents) and every tag (as a substring of the stored tag string). The
// statement is assembled with generated placeholders only; values never end
// up in the SQL text.
func (r *NoteReadRepository) Search(ctx context.Context, userID uuid.UUID, keywords, tags []string) ([]models.NoteDB, error) {
	var b strings.Builder
	b.WriteString("SELECT " + noteColumns + " FROM notes WHERE user_id = $1")
	args := []any{userID}

	for _, kw := range keywords {
		like := "%" + kw + "%"
		fmt.Fprintf(&b, " AND (title LIKE $%d OR contents LIKE $%d)", len(args)+1, len(args)+2)
		args = append(args, like, like)
	}
	for _, tag := range tags {
		fmt.Fprintf(&b, " AND tags LIKE $%d", len(args)+1)
		args = append(args, "%"+tag+"%")
	}
	b.WriteString(" ORDER BY date_modified DESC")
	query := b.String()

	var notes []models.NoteDB
	err := r.db.SelectContext(ctx, &notes, query, args...)

	logger.Log.Infow("query",
		"sql", query,
		"args", args,
		"result", len(notes),
		"error", err,
	)

	return notes, err
}
