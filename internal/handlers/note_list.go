package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/models"
)

// NoteLister defines the interface that the listing service must implement.
type NoteLister interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]models.NoteDB, error)
}

// RecentNoteLister defines the interface that the recent-listing service must
// implement.
type RecentNoteLister interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.NoteDB, error)
}

// NotesResponse represents a list of notes
// swagger:model NotesResponse
type NotesResponse struct {
	// The notes, newest modification first
	Notes []models.NoteDB `json:"notes"`
}

// NewListNotesHandler returns an HTTP handler listing every note of the user.
// @Summary List all notes
// @Description Returns every note of the authenticated user, newest modification first
// @Tags notes
// @Produce json
// @Success 200 {object} handlers.NotesResponse "All notes"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /notes [get]
// @Security BearerAuth
func NewListNotesHandler(svc NoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		notes, err := svc.ListAll(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, NotesResponse{Notes: notes})
	}
}

// NewListRecentNotesHandler returns an HTTP handler listing the most recently
// modified notes. A missing or unparsable limit falls back to the service
// default.
// @Summary List recent notes
// @Description Returns the authenticated user's most recently modified notes
// @Tags notes
// @Produce json
// @Param limit query int false "Maximum number of notes, default 10"
// @Success 200 {object} handlers.NotesResponse "Recent notes"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /notes/recent [get]
// @Security BearerAuth
func NewListRecentNotesHandler(svc RecentNoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		notes, err := svc.ListRecent(r.Context(), userID, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, NotesResponse{Notes: notes})
	}
}
