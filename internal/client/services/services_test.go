package services

import (
	"context"
	"database/sql"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotline/plotline/internal/client/api"
	"github.com/plotline/plotline/internal/client/models"
	"github.com/plotline/plotline/internal/client/session"
	"github.com/plotline/plotline/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupStore(t *testing.T) session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return session.NewSQLiteStore(db)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

// ---- fake client ----

// fakeClient implements api.Client for unit tests of the services layer.
type fakeClient struct {
	CloseErr error
	PingErr  error

	ListRet []models.PlotSummary
	ListErr error

	GetPlotRet *models.PlotDetail
	GetPlotErr error
	// when non-nil, GetPlot blocks until the channel is closed
	GetPlotGate    chan struct{}
	GetPlotEntered chan struct{}

	RegisterUser *models.User
	RegisterTok  string
	RegisterErr  error

	LoginUser *models.User
	LoginTok  string
	LoginErr  error

	AdminTok string
	AdminErr error

	InterestErr  error
	InterestsRet []models.Interest
	InterestsErr error

	// recorded arguments
	listCalls    atomic.Int64
	getPlotCalls atomic.Int64

	LastGetPlotID    int64
	LastGetPlotToken string

	LastRegisterName  string
	LastRegisterEmail string
	LastRegisterPass  []byte

	LastLoginEmail string
	LastLoginPass  []byte

	LastInterestID    int64
	LastInterestToken string
	LastInterestRef   string

	LastInterestsToken string
}

func (f *fakeClient) Close() error                   { return f.CloseErr }
func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) ListPlots(ctx context.Context) ([]models.PlotSummary, error) {
	f.listCalls.Add(1)
	return append([]models.PlotSummary(nil), f.ListRet...), f.ListErr
}

func (f *fakeClient) GetPlot(ctx context.Context, id int64, token string) (*models.PlotDetail, error) {
	f.getPlotCalls.Add(1)
	f.LastGetPlotID = id
	f.LastGetPlotToken = token
	if f.GetPlotEntered != nil {
		close(f.GetPlotEntered)
		f.GetPlotEntered = nil
	}
	if f.GetPlotGate != nil {
		<-f.GetPlotGate
	}
	return f.GetPlotRet, f.GetPlotErr
}

func (f *fakeClient) Register(ctx context.Context, name, email string, password []byte) (*models.User, string, error) {
	f.LastRegisterName = name
	f.LastRegisterEmail = email
	f.LastRegisterPass = append([]byte(nil), password...)
	return f.RegisterUser, f.RegisterTok, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email string, password []byte) (*models.User, string, error) {
	f.LastLoginEmail = email
	f.LastLoginPass = append([]byte(nil), password...)
	return f.LoginUser, f.LoginTok, f.LoginErr
}

func (f *fakeClient) AdminLogin(ctx context.Context, email string, password []byte) (string, error) {
	return f.AdminTok, f.AdminErr
}

func (f *fakeClient) ExpressInterest(ctx context.Context, id int64, token, reference string) error {
	f.LastInterestID = id
	f.LastInterestToken = token
	f.LastInterestRef = reference
	return f.InterestErr
}

func (f *fakeClient) ListInterests(ctx context.Context, adminToken string) ([]models.Interest, error) {
	f.LastInterestsToken = adminToken
	return f.InterestsRet, f.InterestsErr
}

var _ api.Client = (*fakeClient)(nil)
