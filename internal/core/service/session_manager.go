package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/murahjaya/inventory-system/internal/core/domain"
	"github.com/murahjaya/inventory-system/internal/core/ports"
)

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

// SessionManager mints and destroys session identities. The identity lives
// server-side; the client only ever holds a signed token referencing it.
type SessionManager struct {
	store  ports.SessionStore
	secret string
}

func NewSessionManager(store ports.SessionStore, secret string) *SessionManager {
	return &SessionManager{store: store, secret: secret}
}

// Start populates a fresh session from a verified credential record, persists
// it, and returns it with the signed token. Remember lengthens the lifetime
// from one day to thirty.
func (m *SessionManager) Start(ctx context.Context, user *domain.User, remember bool) (*domain.Session, string, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, "", err
	}

	session := &domain.Session{
		ID:        id,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Remember:  remember,
		CreatedAt: time.Now().UTC(),
	}

	ttl := m.TTL(remember)
	if err := m.store.Create(ctx, session, ttl); err != nil {
		return nil, "", err
	}

	token, err := m.signToken(id, ttl)
	if err != nil {
		// don't leave an orphaned identity behind
		_ = m.store.Delete(ctx, id)
		return nil, "", err
	}
	return session, token, nil
}

// End destroys the session identity. Ending an already-absent session is fine.
func (m *SessionManager) End(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

// TTL reports the session lifetime for the remember flag.
func (m *SessionManager) TTL(remember bool) time.Duration {
	if remember {
		return rememberTTL
	}
	return sessionTTL
}

func (m *SessionManager) signToken(sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// newSessionID returns a fresh 128-bit random identifier.
func newSessionID() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}
