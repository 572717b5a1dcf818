// Package services contains the application services of the photokeeper
// client: authentication, the library read cache, the upload orchestrator,
// the background consistency poller, and the duplicate-resolution workflow.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/photokeeper/internal/client/api"
	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Restore: load the persisted credential before any protected call.
//   - Login/Register: authenticate against the server and publish the
//     received token through the session.
//   - Logout: discard the credential, live and persisted.
//   - Me: fetch the current account for display.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, fullName, email string, password []byte) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
}

type authService struct {
	client  api.Client
	session *session.Session
}

// NewAuthService constructs an AuthService bound to the given API client and
// session.
func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{client: client, session: sess}
}

func (a *authService) Restore(ctx context.Context) error {
	return a.session.Restore(ctx)
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, fullName, email string, password []byte) error {
	token, err := a.client.Register(ctx, fullName, email, string(password))
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	if err := a.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) Me(ctx context.Context) (*models.User, error) {
	return a.client.Me(ctx)
}
