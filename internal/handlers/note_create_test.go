package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/services"
)

func TestCreateNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNoteCreator(ctrl)

	userID := uuid.New()

	tests := []struct {
		name         string
		authed       bool
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:   "success",
			authed: true,
			inputBody: CreateNoteRequest{
				Title:    "Groceries",
				Contents: "milk\neggs",
				Tags:     []string{"shopping", "todo"},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), userID, "Groceries", "milk\neggs", []string{"shopping", "todo"}).
					Return(int64(42), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &CreateNoteResponse{
				NoteID: 42,
			},
		},
		{
			name:   "no user in context",
			authed: false,
			inputBody: CreateNoteRequest{
				Title: "Groceries",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{
				Error: "Unauthorized",
			},
		},
		{
			name:         "invalid JSON",
			authed:       true,
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Invalid request",
			},
		},
		{
			name:   "tag with forbidden characters",
			authed: true,
			inputBody: CreateNoteRequest{
				Title: "Groceries",
				Tags:  []string{"ok-tag", "not ok"},
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Invalid request",
			},
		},
		{
			name:   "service rejects tag",
			authed: true,
			inputBody: CreateNoteRequest{
				Title: "Groceries",
				Tags:  []string{"shopping"},
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), userID, "Groceries", "", []string{"shopping"}).
					Return(int64(0), services.ErrInvalidTag)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: services.ErrInvalidTag.Error(),
			},
		},
		{
			name:   "internal error",
			authed: true,
			inputBody: CreateNoteRequest{
				Title: "Groceries",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), userID, "Groceries", "", nil).
					Return(int64(0), errors.New("database error"))
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

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/notes", bytes.NewReader(bodyBytes))
			if tt.authed {
				req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			}
			w := httptest.NewRecorder()

			handler := NewCreateNoteHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &CreateNoteResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
