package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/xeliz/tagged/internal/logger"
	"github.com/xeliz/tagged/internal/models"
	"github.com/xeliz/tagged/internal/validate"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUsername    = errors.New("username may contain only letters, digits, underscore or hyphen")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (uuid.UUID, error)
}

// SessionCreator defines the session operations the auth flow needs.
type SessionCreator interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Revoke(ctx context.Context, token string) error
}

// PasswordHasher hashes and verifies passwords under the configured scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionCreator
	hasher   PasswordHasher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionCreator, hasher PasswordHasher) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Register creates a new user and returns its id.
func (svc *AuthService) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if !validate.Username(username) {
		return uuid.Nil, ErrInvalidUsername
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		return uuid.Nil, ErrUsernameTaken
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, username, hash)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Login authenticates a user and returns a fresh session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserDoesNotExist
	}

	if err := svc.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.sessions.Create(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to create session", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the session token. Unknown tokens are a no-op.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	return svc.sessions.Revoke(ctx, token)
}
