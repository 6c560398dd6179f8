package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/services"
)

// NoteDeleter defines the interface that the service must implement.
type NoteDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, noteID int64) error
}

// DeleteNoteResponse represents a successful note deletion response
// swagger:model DeleteNoteResponse
type DeleteNoteResponse struct {
	// Success message
	Message string `json:"message"`
}

// NewDeleteNoteHandler returns an HTTP handler for deleting a note.
// @Summary Delete a note
// @Description Deletes one of the authenticated user's notes
// @Tags notes
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} handlers.DeleteNoteResponse "Note deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid note id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Note does not exist"
// @Router /notes/{id} [delete]
// @Security BearerAuth
func NewDeleteNoteHandler(svc NoteDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, noteID); err != nil {
			switch {
			case errors.Is(err, services.ErrNoteNotFound):
				writeError(w, http.StatusNotFound, "Note does not exist")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteNoteResponse{Message: "Note deleted"})
	}
}
