package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/models"
	"github.com/xeliz/tagged/internal/services"
)

// NoteGetter defines the interface that the service must implement.
type NoteGetter interface {
	Get(ctx context.Context, userID uuid.UUID, noteID int64) (*models.NoteDB, error)
}

// NoteResponse represents a single note response
// swagger:model NoteResponse
type NoteResponse struct {
	// The note
	Note *models.NoteDB `json:"note"`
}

// noteIDParam parses the {id} URL parameter.
func noteIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewGetNoteHandler returns an HTTP handler for fetching a single note.
// A note owned by someone else is reported as not found, indistinguishable
// from a nonexistent id.
// @Summary Get a note
// @Description Returns one of the authenticated user's notes by id
// @Tags notes
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} handlers.NoteResponse "The note"
// @Failure 400 {object} handlers.ErrorResponse "Invalid note id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Note does not exist"
// @Router /notes/{id} [get]
// @Security BearerAuth
func NewGetNoteHandler(svc NoteGetter) http.HandlerFunc {
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

		note, err := svc.Get(r.Context(), userID, noteID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoteNotFound):
				writeError(w, http.StatusNotFound, "Note does not exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, NoteResponse{Note: note})
	}
}
