// Package services contains application services for the plotline client.
// This file defines the authentication service: register, login, logout,
// admin login, and access to the current identity.
package services

import (
	"context"
	"fmt"

	"github.com/plotline/plotline/internal/client/api"
	"github.com/plotline/plotline/internal/client/models"
	"github.com/plotline/plotline/internal/client/session"
	"github.com/plotline/plotline/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; persist the session only on success.
//   - Login: authenticate; persist the session only on success.
//   - Logout: clear the persisted session.
//   - AdminLogin/AdminLogout: same for the administrator identity.
//   - CurrentUser: the identity from the session store, nil when logged out.
//
// No method retries; a network error is surfaced once per call attempt.
// All methods honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	AdminLogin(ctx context.Context, email string, password []byte) error
	AdminLogout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and
// an injected session store. The store is mutated exclusively on success.
type authService struct {
	client   api.Client
	sessions session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sessions session.Store, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, log: log.With("component", "auth")}
}

func (a *authService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	user, token, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.sessions.Set(ctx, user, token); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "registered", "email", user.Email)
	return user, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	user, token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.sessions.Set(ctx, user, token); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "logged in", "email", user.Email)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

func (a *authService) AdminLogin(ctx context.Context, email string, password []byte) error {
	token, err := a.client.AdminLogin(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.sessions.SetAdminToken(ctx, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "admin logged in", "email", email)
	return nil
}

func (a *authService) AdminLogout(ctx context.Context) error {
	return a.sessions.ClearAdmin(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.sessions.Current(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
