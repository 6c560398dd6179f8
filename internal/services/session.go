package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/xeliz/tagged/internal/logger"
)

// ErrNotAuthenticated is returned when a token is absent, inactive, or
// references a user that no longer exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// maxTokenAttempts bounds the collision loop. With a 62^20 keyspace a single
// iteration is the practical outcome; the cap only guards against a broken
// random source producing repeats.
const maxTokenAttempts = 100

// SessionReader defines read operations on the session store.
type SessionReader interface {
	Exists(ctx context.Context, token string) (bool, error)
	GetUserID(ctx context.Context, token string) (*uuid.UUID, error)
}

// SessionWriter defines write operations on the session store.
type SessionWriter interface {
	Save(ctx context.Context, token string, userID uuid.UUID) error
	Deactivate(ctx context.Context, token string) error
}

// TokenGenerator produces candidate session tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// SessionService issues, resolves and revokes session tokens. All session
// state lives in the database; the service itself is stateless.
type SessionService struct {
	reader SessionReader
	writer SessionWriter
	tokens TokenGenerator
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(reader SessionReader, writer SessionWriter, tokens TokenGenerator) *SessionService {
	return &SessionService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Create issues a fresh token for the user and stores it as an active
// session. The exists-check and the insert are two statements; two
// concurrent logins drawing the same token could theoretically race, which
// is accepted at this scale.
func (svc *SessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := svc.tokens.Generate()
		if err != nil {
			logger.Log.Errorw("failed to generate session token", "err", err)
			return "", err
		}

		exists, err := svc.reader.Exists(ctx, token)
		if err != nil {
			logger.Log.Errorw("failed to check token uniqueness", "err", err)
			return "", err
		}
		if exists {
			logger.Log.Warnw("session token collision", "attempt", attempt)
			continue
		}

		if err := svc.writer.Save(ctx, token, userID); err != nil {
			logger.Log.Errorw("failed to save session", "err", err)
			return "", err
		}
		return token, nil
	}

	return "", fmt.Errorf("no unused session token after %d attempts", maxTokenAttempts)
}

// Resolve maps an active token to its owning user id.
func (svc *SessionService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := svc.reader.GetUserID(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to resolve session", "err", err)
		return uuid.Nil, err
	}
	if userID == nil {
		return uuid.Nil, ErrNotAuthenticated
	}
	return *userID, nil
}

// Revoke deactivates the session. Revoking an unknown or already-revoked
// token is a no-op.
func (svc *SessionService) Revoke(ctx context.Context, token string) error {
	if err := svc.writer.Deactivate(ctx, token); err != nil {
		logger.Log.Errorw("failed to revoke session", "err", err)
		return err
	}
	return nil
}
