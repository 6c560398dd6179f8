package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// The search statement is assembled at runtime, so pin down the exact SQL and
// placeholder layout: filter values must arrive as parameters only.
func TestNoteRepository_SearchSQL(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	readRepo := NewNoteReadRepository(sqlxDB)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "contents", "date_created", "tags", "date_modified", "user_id"}).
		AddRow(int64(1), "Groceries", "buy milk", now, "shopping", now, userID)

	mock.ExpectQuery("SELECT id, title, contents, date_created, tags, date_modified, user_id FROM notes WHERE user_id = $1 AND (title LIKE $2 OR contents LIKE $3) AND (title LIKE $4 OR contents LIKE $5) AND tags LIKE $6 ORDER BY date_modified DESC").
		WithArgs(userID, "%milk%", "%milk%", "%eggs%", "%eggs%", "%shopping%").
		WillReturnRows(rows)

	notes, err := readRepo.Search(context.Background(), userID, []string{"milk", "eggs"}, []string{"shopping"})
	assert.NoError(t, err)
	assert.Len(t, notes, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_SearchSQL_TagsOnly(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	readRepo := NewNoteReadRepository(sqlxDB)

	userID := uuid.New()

	mock.ExpectQuery("SELECT id, title, contents, date_created, tags, date_modified, user_id FROM notes WHERE user_id = $1 AND tags LIKE $2 ORDER BY date_modified DESC").
		WithArgs(userID, "%todo%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "contents", "date_created", "tags", "date_modified", "user_id"}))

	notes, err := readRepo.Search(context.Background(), userID, nil, []string{"todo"})
	assert.NoError(t, err)
	assert.Empty(t, notes)

	assert.NoError(t, mock.ExpectationsWereMet())
}
