// Package session holds the client's record of the currently authenticated
// identity and its bearer token, persisted locally so the token survives
// restarts (the terminal analog of browser localStorage).
//
// The store is an explicit handle injected into every component that needs
// auth state; there is no package-level session. It enforces no expiry:
// an invalid token is only discovered when the backend rejects a request.
package session

import (
	"context"

	"github.com/plotline/plotline/internal/client/models"
)

// Fixed keys under which session state is persisted.
const (
	keyToken      = "token"
	keyUser       = "user"
	keyAdminToken = "admin_token"
)

// Store is the session contract: read the token, read the current user,
// replace both atomically, or clear them.
type Store interface {
	// Token returns the stored bearer token, or "" when logged out.
	Token(ctx context.Context) (string, error)

	// Current returns the stored identity, or nil when logged out.
	Current(ctx context.Context) (*models.User, error)

	// Set replaces the session with the given identity and token.
	Set(ctx context.Context, user *models.User, token string) error

	// Clear removes the user session. The admin token is unaffected.
	Clear(ctx context.Context) error

	// AdminToken returns the stored admin token, or "" when absent.
	AdminToken(ctx context.Context) (string, error)

	// SetAdminToken stores the admin bearer token.
	SetAdminToken(ctx context.Context, token string) error

	// ClearAdmin removes the admin token.
	ClearAdmin(ctx context.Context) error
}
