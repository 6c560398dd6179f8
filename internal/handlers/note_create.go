package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jellydator/validation"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/services"
	"github.com/xeliz/tagged/internal/validate"
)

// NoteCreator defines the interface that the service must implement.
type NoteCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, contents string, tags []string) (int64, error)
}

// CreateNoteRequest represents the JSON body for note creation
// swagger:model CreateNoteRequest
type CreateNoteRequest struct {
	// Note title
	Title string `json:"title"`

	// Note contents; raw newlines are preserved
	Contents string `json:"contents"`

	// Tags, each of letters, digits, underscore or hyphen
	Tags []string `json:"tags"`
}

func (req CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Tags, validation.Each(validate.TokenRules...)),
	)
}

// CreateNoteResponse represents a successful note creation response
// swagger:model CreateNoteResponse
type CreateNoteResponse struct {
	// Id of the created note
	NoteID int64 `json:"note_id"`
}

// NewCreateNoteHandler returns an HTTP handler for creating a note.
// @Summary Create a note
// @Description Stores a new note owned by the authenticated user
// @Tags notes
// @Accept json
// @Produce json
// @Param createNoteRequest body handlers.CreateNoteRequest true "Note to create"
// @Success 201 {object} handlers.CreateNoteResponse "Note created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or tag charset"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /notes [post]
// @Security BearerAuth
func NewCreateNoteHandler(svc NoteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateNoteRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		noteID, err := svc.Create(r.Context(), userID, req.Title, req.Contents, req.Tags)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTag):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateNoteResponse{NoteID: noteID})
	}
}
