package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/models"
	"github.com/xeliz/tagged/internal/validate"
)

var (
	// ErrNoteNotFound covers both absent notes and notes owned by someone
	// else; callers cannot tell the two apart.
	ErrNoteNotFound = errors.New("note does not exist")
	// ErrInvalidTag is returned when a supplied tag violates the charset rule.
	ErrInvalidTag = errors.New("a tag may contain only letters, digits, underscore or hyphen")
	// ErrInvalidSearchParams is returned when both filter lists are empty or
	// any keyword/tag violates the charset rule.
	ErrInvalidSearchParams = errors.New("invalid search parameters")
)

// defaultRecentLimit matches the original front page listing.
const defaultRecentLimit = 10

// NoteReader defines owner-scoped read operations on the note store.
type NoteReader interface {
	GetByID(ctx context.Context, userID uuid.UUID, noteID int64) (*models.NoteDB, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.NoteDB, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]models.NoteDB, error)
	ListAfter(ctx context.Context, userID uuid.UUID, afterID int64) ([]models.NoteDB, error)
	GetTagStrings(ctx context.Context, userID uuid.UUID) ([]string, error)
	Search(ctx context.Context, userID uuid.UUID, keywords, tags []string) ([]models.NoteDB, error)
}

// NoteWriter defines owner-scoped write operations on the note store.
type NoteWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, contents, tags string) (int64, error)
	Update(ctx context.Context, userID uuid.UUID, noteID int64, title, contents, tags string) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, noteID int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NoteService handles note CRUD, listings and search.
type NoteService struct {
	reader      NoteReader
	writer      NoteWriter
	kafkaWriter KafkaWriter
}

// NewNoteService creates a new NoteService. kafkaWriter may be nil, in which
// case note events are not published.
func NewNoteService(reader NoteReader, writer NoteWriter, kafkaWriter KafkaWriter) *NoteService {
	return &NoteService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a note mutation event to Kafka.
func (svc *NoteService) publishEvent(ctx context.Context, userID uuid.UUID, noteID int64, operation string) {
	if svc.kafkaWriter == nil {
		return
	}

	event := models.NoteEvent{
		EventID:   uuid.NewString(),
		NoteID:    noteID,
		UserID:    userID.String(),
		Operation: operation,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal note event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish note event", "event_id", event.EventID, "error", err)
	}
}

// Create validates the tags, stores the note and returns its id. Tags are
// stored space-joined in submission order.
func (svc *NoteService) Create(ctx context.Context, userID uuid.UUID, title, contents string, tags []string) (int64, error) {
	if !validate.Tags(tags) {
		return 0, ErrInvalidTag
	}

	noteID, err := svc.writer.Save(ctx, userID, title, contents, strings.Join(tags, " "))
	if err != nil {
		logger.Log.Errorw("failed to save note", "userID", userID, "error", err)
		return 0, err
	}

	svc.publishEvent(ctx, userID, noteID, "create")
	return noteID, nil
}

// Get returns the owned note. A foreign note id yields ErrNoteNotFound,
// indistinguishable from a nonexistent one.
func (svc *NoteService) Get(ctx context.Context, userID uuid.UUID, noteID int64) (*models.NoteDB, error) {
	note, err := svc.reader.GetByID(ctx, userID, noteID)
	if err != nil {
		logger.Log.Errorw("failed to get note", "noteID", noteID, "error", err)
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Update rewrites an owned note in place.
func (svc *NoteService) Update(ctx context.Context, userID uuid.UUID, noteID int64, title, contents string, tags []string) error {
	if !validate.Tags(tags) {
		return ErrInvalidTag
	}

	ok, err := svc.writer.Update(ctx, userID, noteID, title, contents, strings.Join(tags, " "))
	if err != nil {
		logger.Log.Errorw("failed to update note", "noteID", noteID, "error", err)
		return err
	}
	if !ok {
		return ErrNoteNotFound
	}

	svc.publishEvent(ctx, userID, noteID, "update")
	return nil
}

// Delete removes an owned note.
func (svc *NoteService) Delete(ctx context.Context, userID uuid.UUID, noteID int64) error {
	ok, err := svc.writer.Delete(ctx, userID, noteID)
	if err != nil {
		logger.Log.Errorw("failed to delete note", "noteID", noteID, "error", err)
		return err
	}
	if !ok {
		return ErrNoteNotFound
	}

	svc.publishEvent(ctx, userID, noteID, "delete")
	return nil
}

// ListRecent returns the most recently modified notes, newest first.
// Non-positive limits fall back to the default of 10.
func (svc *NoteService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.NoteDB, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return svc.reader.ListRecent(ctx, userID, limit)
}

// ListAll returns every note of the user, newest modification first.
func (svc *NoteService) ListAll(ctx context.Context, userID uuid.UUID) ([]models.NoteDB, error) {
	return svc.reader.ListAll(ctx, userID)
}

// ListAfter returns the user's notes with id greater than afterID.
func (svc *NoteService) ListAfter(ctx context.Context, userID uuid.UUID, afterID int64) ([]models.NoteDB, error) {
	return svc.reader.ListAfter(ctx, userID, afterID)
}

// Tags flattens the tag strings of every owned note into a sorted,
// deduplicated list.
func (svc *NoteService) Tags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	tagStrings, err := svc.reader.GetTagStrings(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "userID", userID, "error", err)
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	for _, s := range tagStrings {
		for _, tag := range strings.Fields(s) {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// Search returns the owned notes matching every keyword (title or contents)
// and every tag (substring of the stored tag string). At least one filter
// must be supplied and every token must satisfy the charset rule, otherwise
// no query is executed.
func (svc *NoteService) Search(ctx context.Context, userID uuid.UUID, keywords, tags []string) ([]models.NoteDB, error) {
	if len(keywords) == 0 && len(tags) == 0 {
		return nil, ErrInvalidSearchParams
	}
	if !validate.Tags(keywords) || !validate.Tags(tags) {
		return nil, ErrInvalidSearchParams
	}

	notes, err := svc.reader.Search(ctx, userID, keywords, tags)
	if err != nil {
		logger.Log.Errorw("failed to search notes", "userID", userID, "error", err)
		return nil, err
	}
	return notes, nil
}
