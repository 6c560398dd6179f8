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

// NoteUpdater defines the interface that the service must implement.
type NoteUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, noteID int64, title, contents string, tags []string) error
}

// UpdateNoteRequest represents the JSON body for note editing
// swagger:model UpdateNoteRequest
type UpdateNoteRequest struct {
	// Note title
	Title string `json:"title"`

	// Note contents
	Contents string `json:"contents"`

	// Tags, each of letters, digits, underscore or hyphen
	Tags []string `json:"tags"`
}

func (req UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Tags, validation.Each(validate.TokenRules...)),
	)
}

// UpdateNoteResponse represents a successful note update response
// swagger:model UpdateNoteResponse
type UpdateNoteResponse struct {
	// Success message
	Message string `json:"message"`
}

// NewUpdateNoteHandler returns an HTTP handler for editing a note.
// The edit bumps the modification timestamp; the creation timestamp never
// changes.
// @Summary Update a note
// @Description Rewrites one of the authenticated user's notes
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param updateNoteRequest body handlers.UpdateNoteRequest true "New note contents"
// @Success 200 {object} handlers.UpdateNoteResponse "Note updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or tag charset"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Note does not exist"
// @Router /notes/{id} [put]
// @Security BearerAuth
func NewUpdateNoteHandler(svc NoteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		noteID, err := noteIDParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid note id")
			return
		}

		var req UpdateNoteRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		err = svc.Update(r.Context(), userID, noteID, req.Title, req.Contents, req.Tags)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidTag):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrNoteNotFound):
				writeError(w, http.StatusNotFound, "Note does not exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateNoteResponse{Message: "Note updated"})
	}
}
