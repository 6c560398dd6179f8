package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/middlewares"
)

// TagLister defines the interface that the tag service must implement.
type TagLister interface {
	Tags(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// TagsResponse represents the distinct tags of a user
// swagger:model TagsResponse
type TagsResponse struct {
	// Sorted, deduplicated tags
	Tags []string `json:"tags"`
}

// NewListTagsHandler returns an HTTP handler listing every distinct tag used
// across the user's notes.
// @Summary List tags
// @Description Returns the sorted distinct tags across the authenticated user's notes
// @Tags notes
// @Produce json
// @Success 200 {object} handlers.TagsResponse "Distinct tags"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tags [get]
// @Security BearerAuth
func NewListTagsHandler(svc TagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		tags, err := svc.Tags(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, TagsResponse{Tags: tags})
	}
}
