package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func seedUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()
	userID, err := NewUserWriteRepository(db).Save(context.Background(), username, "hash")
	assert.NoError(t, err)
	return userID
}

func TestNoteRepository_SaveAndGet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := seedUser(t, db, "alice")

	writeRepo := NewNoteWriteRepository(db, nil)
	readRepo := NewNoteReadRepository(db)

	noteID, err := writeRepo.Save(ctx, userID, "Groceries", "milk\neggs", "shopping todo")
	assert.NoError(t, err)
	assert.Positive(t, noteID)

	note, err := readRepo.GetByID(ctx, userID, noteID)
	assert.NoError(t, err)
	if assert.NotNil(t, note) {
		assert.Equal(t, noteID, note.ID)
		assert.Equal(t, "Groceries", note.Title)
		assert.Equal(t, "milk\neggs", note.Contents)
		assert.Equal(t, "shopping todo", note.Tags)
		assert.Equal(t, userID, note.UserID)
		assert.Equal(t, note.DateCreated, note.DateModified)
	}
}

func TestNoteRepository_GetForeignNote(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	writeRepo := NewNoteWriteRepository(db, nil)
	readRepo := NewNoteReadRepository(db)

	noteID, err := writeRepo.Save(ctx, alice, "private", "secret", "")
	assert.NoError(t, err)

	// Bob sees Alice's note as absent
	note, err := readRepo.GetByID(ctx, bob, noteID)
	assert.NoError(t, err)
	assert.Nil(t, note)
}

func TestNoteRepository_Update(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	writeRepo := NewNoteWriteRepository(db, nil)
	readRepo := NewNoteReadRepository(db)

	noteID, err := writeRepo.Save(ctx, alice, "Groceries", "milk", "shopping")
	assert.NoError(t, err)

	ok, err := writeRepo.Update(ctx, alice, noteID, "Groceries v2", "milk\nbread", "shopping todo")
	assert.NoError(t, err)
	assert.True(t, ok)

	note, err := readRepo.GetByID(ctx, alice, noteID)
	assert.NoError(t, err)
	if assert.NotNil(t, note) {
		assert.Equal(t, "Groceries v2", note.Title)
		assert.Equal(t, "milk\nbread", note.Contents)
		assert.Equal(t, "shopping todo", note.Tags)
		assert.False(t, note.DateModified.Before(note.DateCreated))
	}

	// Foreign and unknown ids affect nothing
	ok, err = writeRepo.Update(ctx, bob, noteID, "x", "y", "")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = writeRepo.Update(ctx, alice, noteID+1000, "x", "y", "")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNoteRepository_Delete(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	writeRepo := NewNoteWriteRepository(db, nil)
	readRepo := NewNoteReadRepository(db)

	noteID, err := writeRepo.Save(ctx, alice, "Groceries", "milk", "")
	assert.NoError(t, err)

	ok, err := writeRepo.Delete(ctx, bob, noteID)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = writeRepo.Delete(ctx, alice, noteID)
	assert.NoError(t, err)
	assert.True(t, ok)

	note, err := readRepo.GetByID(ctx, alice, noteID)
	assert.NoError(t, err)
	assert.Nil(t, note)

	ok, err = writeRepo.Delete(ctx, alice, noteID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNoteRepository_SaveInTransaction(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	alice := seedUser(t, db, "alice")

	tx, err := db.Beginx()
	assert.NoError(t, err)

	writeRepo := NewNoteWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })
	readRepo := NewNoteReadRepository(db)

	noteID, err := writeRepo.Save(ctx, alice, "Groceries", "milk", "")
	assert.NoError(t, err)

	// Rolled back writes leave no trace
	assert.NoError(t, tx.Rollback())

	note, err := readRepo.GetByID(ctx, alice, noteID)
	assert.NoError(t, err)
	assert.Nil(t, note)
}

func TestNoteRepository_Listings(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	writeRepo := NewNoteWriteRepository(db, nil)
	readRepo := NewNoteReadRepository(db)

	var ids []int64
	for _, title := range []string{"first", "second", "third"} {
		id, err := writeRepo.Save(ctx, alice, title, "", "")
		assert.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := writeRepo.Save(ctx, bob, "bobs note", "", "")
	assert.NoError(t, err)

	// Touch the first note so it becomes the most recently modified
	ok, err := writeRepo.Update(ctx, alice, ids[0], "first touched", "", "")
	assert.NoError(t, err)
	assert.True(t, ok)

	all, err := readRepo.ListAll(ctx, alice)
	assert.NoError(t, err)
	if assert.Len(t, all, 3) {
		assert.Equal(t, "first touched", all[0].Title)
	}

	recent, err := readRepo.ListRecent(ctx, alice, 2)
	assert.NoError(t, err)
	if assert.Len(t, recent, 2) {
		assert.Equal(t, "first touched", recent[0].Title)
	}

	after, err := readRepo.ListAfter(ctx, alice, ids[0])
	assert.NoError(t, err)
	if assert.Len(t, after, 2) {
		// Highest id first, bob's note excluded
		assert.Equal(t, ids[2], after[0].ID)
		assert.Equal(t, ids[1], after[1].ID)
	}
}

func TestNoteRepository_GetTagStrings(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	alice := seedUser(t, db, "alice")

	writeRepo := NewNoteWriteRepository(db, nil)
	readRepo := NewNoteReadRepository(db)

	_, err := writeRepo.Save(ctx, alice, "a", "", "shopping todo")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, alice, "b", "", "todo")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, alice, "c", "", "")
	assert.NoError(t, err)

	tags, err := readRepo.GetTagStrings(ctx, alice)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"shopping todo", "todo", ""}, tags)
}

func TestNoteRepository_Search(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	writeRepo := NewNoteWriteRepository(db, nil)
	readRepo := NewNoteReadRepository(db)

	groceries, err := writeRepo.Save(ctx, alice, "Groceries", "buy milk and eggs", "shopping todo")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, alice, "Work log", "milk the deadline", "work")
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, bob, "Groceries", "buy milk", "shopping")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		keywords    []string
		tags        []string
		expectedIDs []int64
	}{
		{
			name:        "keyword in contents",
			keywords:    []string{"milk"},
			expectedIDs: nil, // filled below
		},
		{
			name:        "keyword and tag must both match",
			keywords:    []string{"milk"},
			tags:        []string{"shopping"},
			expectedIDs: []int64{groceries},
		},
		{
			name:        "every keyword must match",
			keywords:    []string{"milk", "eggs"},
			expectedIDs: []int64{groceries},
		},
		{
			name:        "tag substring matches",
			tags:        []string{"shop"},
			expectedIDs: []int64{groceries},
		},
		{
			name:     "no match",
			keywords: []string{"cheese"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := readRepo.Search(ctx, alice, tt.keywords, tt.tags)
			assert.NoError(t, err)

			if tt.name == "keyword in contents" {
				// Both of alice's notes mention milk, bob's stays hidden
				assert.Len(t, notes, 2)
				return
			}

			var ids []int64
			for _, n := range notes {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}
