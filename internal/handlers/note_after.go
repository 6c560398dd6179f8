package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/models"
)

// AfterNoteLister defines the interface that the incremental-listing service
// must implement.
type AfterNoteLister interface {
	ListAfter(ctx context.Context, userID uuid.UUID, afterID int64) ([]models.NoteDB, error)
}

// NewListAfterNotesHandler returns an HTTP handler listing the notes created
// after a given id. Clients poll it with the highest id they have seen.
// @Summary List notes after an id
// @Description Returns the authenticated user's notes with id greater than the given one
// @Tags notes
// @Produce json
// @Param id path int true "Id to list after"
// @Success 200 {object} handlers.NotesResponse "Newer notes"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /notes/after/{id} [get]
// @Security BearerAuth
func NewListAfterNotesHandler(svc AfterNoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		afterID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid id")
			return
		}

		notes, err := svc.ListAfter(r.Context(), userID, afterID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, NotesResponse{Notes: notes})
	}
}
