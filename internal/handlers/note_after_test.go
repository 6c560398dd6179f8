package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/models"
)

func TestListAfterNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAfterNoteLister(ctrl)

	userID := uuid.New()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	notes := []models.NoteDB{
		{ID: 7, Title: "newer", DateCreated: now, DateModified: now},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "success",
			target: "/notes/after/5",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListAfter(gomock.Any(), userID, int64(5)).
					Return(notes, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &NotesResponse{
				Notes: notes,
			},
		},
		{
			name:   "zero id returns everything",
			target: "/notes/after/0",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListAfter(gomock.Any(), userID, int64(0)).
					Return(notes, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &NotesResponse{
				Notes: notes,
			},
		},
		{
			name:         "non-numeric id",
			target:       "/notes/after/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Invalid id",
			},
		},
		{
			name:   "internal error",
			target: "/notes/after/5",
			mockSetup: func() {
				mockSvc.EXPECT().
					ListAfter(gomock.Any(), userID, int64(5)).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			router := chi.NewRouter()
			router.Get("/notes/after/{id}", NewListAfterNotesHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &NotesResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
