package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/models"
	"github.com/xeliz/tagged/internal/services"
)

// NoteSearcher defines the interface that the search service must implement.
type NoteSearcher interface {
	Search(ctx context.Context, userID uuid.UUID, keywords, tags []string) ([]models.NoteDB, error)
}

// NewSearchNotesHandler returns an HTTP handler for searching notes. Both
// query parameters are space-separated token lists; every token must match
// for a note to be returned.
// @Summary Search notes
// @Description Returns the authenticated user's notes matching every keyword and tag
// @Tags notes
// @Produce json
// @Param keywords query string false "Space-separated keywords matched against title and contents"
// @Param tags query string false "Space-separated tags"
// @Success 200 {object} handlers.NotesResponse "Matching notes"
// @Failure 400 {object} handlers.ErrorResponse "No filters or invalid token charset"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /notes/search [get]
// @Security BearerAuth
func NewSearchNotesHandler(svc NoteSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		keywords := strings.Fields(r.URL.Query().Get("keywords"))
		tags := strings.Fields(r.URL.Query().Get("tags"))

		notes, err := svc.Search(r.Context(), userID, keywords, tags)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSearchParams):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, NotesResponse{Notes: notes})
	}
}
