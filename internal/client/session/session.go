// Package session owns the bearer token for the current authenticated
// session. There is exactly one Session per process; every component that
// needs the credential holds a reference to it instead of reading a global.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/photokeeper/internal/client/repositories/metadata"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the single well-known slot the token is persisted under.
const TokenKey = "access_token"

// Session holds the credential in memory behind a lock (the poller goroutine
// reads it concurrently with the REPL) and mirrors it to the metadata
// repository so it survives restarts until explicit logout or a 401.
type Session struct {
	mu    sync.RWMutex
	token string
	repo  metadata.Repository
}

func New(repo metadata.Repository) *Session {
	return &Session{repo: repo}
}

// Restore loads the persisted token, if any. It must complete before the
// first protected request goes out; until then consumers should treat the
// session as indeterminate rather than anonymous.
func (s *Session) Restore(ctx context.Context) error {
	value, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	s.mu.Lock()
	s.token = string(value)
	s.mu.Unlock()
	return nil
}

// Token returns the live credential. ok is false when unauthenticated.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SetToken publishes the new credential immediately and persists it. The
// in-memory value is updated first so concurrent readers never observe the
// previous token after SetToken returns.
func (s *Session) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear drops the credential, both live and persisted. Called on explicit
// logout and by the transport on any 401.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// ExpiresAt reports the token's expiry from its (unverified) JWT claims.
// Purely informational: the server remains the authority, the client only
// uses this for status display. ok is false when there is no token or the
// token does not parse as a JWT with an exp claim.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token, ok := s.Token()
	if !ok {
		return time.Time{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
