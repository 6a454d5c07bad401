package api

import (
	"context"

	"github.com/plotline/plotline/internal/client/models"
)

// Client is the transport-level interface to the listing backend.
// All calls are single-shot: no retries, no caching.
type Client interface {
	// ListPlots fetches the catalog summaries. Unauthenticated.
	ListPlots(ctx context.Context) ([]models.PlotSummary, error)

	// GetPlot fetches the full detail of one plot. The token is forwarded
	// as a bearer credential; a rejection maps to ErrUnauthorized.
	GetPlot(ctx context.Context, id int64, token string) (*models.PlotDetail, error)

	// Register creates an account and returns the identity plus its token.
	Register(ctx context.Context, name, email string, password []byte) (*models.User, string, error)

	// Login authenticates and returns the identity plus its token.
	Login(ctx context.Context, email string, password []byte) (*models.User, string, error)

	// AdminLogin authenticates an administrator and returns the admin token.
	AdminLogin(ctx context.Context, email string, password []byte) (string, error)

	// ExpressInterest records a buyer lead for a plot under the given
	// client-generated reference. Requires a bearer token.
	ExpressInterest(ctx context.Context, id int64, token, reference string) error

	// ListInterests fetches recorded leads for the admin dashboard.
	ListInterests(ctx context.Context, adminToken string) ([]models.Interest, error)

	// Ping checks backend reachability.
	Ping(ctx context.Context) error

	// Close releases underlying transport resources.
	Close() error
}
