package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/plotline/plotline/internal/client/api"
	"github.com/plotline/plotline/internal/client/config"
	"github.com/plotline/plotline/internal/client/models"
	"github.com/plotline/plotline/internal/client/services"
	"github.com/plotline/plotline/internal/client/session"
	"github.com/plotline/plotline/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last observed reachability of the backend. It only
// changes the prompt; commands are never blocked by it.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the services behind the REPL and carries per-process UI state:
// the cached identity for the prompt and the connectivity mode.
type App struct {
	config      *config.Config
	authService services.AuthService
	plotService services.PlotService
	log         logging.Logger

	user   *models.User
	Mode   Mode
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	sessions := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout)

	as := services.NewAuthService(apiClient, sessions, log)
	ps := services.NewPlotService(apiClient, sessions, log)

	a := &App{
		config:      c,
		authService: as,
		plotService: ps,
		log:         log,
		Mode:        ModeOnline,
		reader:      bufio.NewReader(os.Stdin),
	}

	// restore a persisted session so the token survives restarts
	if user, err := as.CurrentUser(ctx); err == nil {
		a.user = user
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher probes backend reachability every interval and
// flips the Mode accordingly. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
