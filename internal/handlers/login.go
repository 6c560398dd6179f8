package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/jellydator/validation"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/middlewares"
	"github.com/xeliz/tagged/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`
}

func (req LoginRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Opaque session token
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login. The issued token
// is returned in the body for API clients and set as a cookie for browser
// flows.
// @Summary User login
// @Description Authenticate user and return an opaque session token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middlewares.SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})
		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}
