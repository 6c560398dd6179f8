package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/models"
)

func TestListNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNoteLister(ctrl)

	userID := uuid.New()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	notes := []models.NoteDB{
		{ID: 2, Title: "second", DateCreated: now, DateModified: now},
		{ID: 1, Title: "first", DateCreated: now, DateModified: now},
	}

	tests := []struct {
		name         string
		authed       bool
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "success",
			authed: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					ListAll(gomock.Any(), userID).
					Return(notes, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &NotesResponse{
				Notes: notes,
			},
		},
		{
			name:         "no user in context",
			authed:       false,
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{
				Error: "Unauthorized",
			},
		},
		{
			name:   "internal error",
			authed: true,
			mockSetup: func() {
				mockSvc.EXPECT().
					ListAll(gomock.Any(), userID).
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

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.authed {
				req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			}
			w := httptest.NewRecorder()

			handler := NewListNotesHandler(mockSvc)
			handler.ServeHTTP(w, req)

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

func TestListRecentNotesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRecentNoteLister(ctrl)

	userID := uuid.New()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	notes := []models.NoteDB{
		{ID: 5, Title: "latest", DateCreated: now, DateModified: now},
	}

	tests := []struct {
		name          string
		target        string
		expectedLimit int
		mockSetup     func(limit int)
		expectedCode  int
		expectedBody  interface{}
	}{
		{
			name:          "explicit limit",
			target:        "/notes/recent?limit=5",
			expectedLimit: 5,
			mockSetup: func(limit int) {
				mockSvc.EXPECT().
					ListRecent(gomock.Any(), userID, limit).
					Return(notes, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &NotesResponse{
				Notes: notes,
			},
		},
		{
			name:          "missing limit falls back to service default",
			target:        "/notes/recent",
			expectedLimit: 0,
			mockSetup: func(limit int) {
				mockSvc.EXPECT().
					ListRecent(gomock.Any(), userID, limit).
					Return(notes, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &NotesResponse{
				Notes: notes,
			},
		},
		{
			name:          "unparsable limit falls back to service default",
			target:        "/notes/recent?limit=many",
			expectedLimit: 0,
			mockSetup: func(limit int) {
				mockSvc.EXPECT().
					ListRecent(gomock.Any(), userID, limit).
					Return(notes, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &NotesResponse{
				Notes: notes,
			},
		},
		{
			name:          "internal error",
			target:        "/notes/recent?limit=5",
			expectedLimit: 5,
			mockSetup: func(limit int) {
				mockSvc.EXPECT().
					ListRecent(gomock.Any(), userID, limit).
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
			tt.mockSetup(tt.expectedLimit)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			w := httptest.NewRecorder()

			handler := NewListRecentNotesHandler(mockSvc)
			handler.ServeHTTP(w, req)

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
