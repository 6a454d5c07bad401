package services

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/plotline/plotline/internal/client/api"
	"github.com/plotline/plotline/internal/client/models"
	"github.com/plotline/plotline/internal/client/session"
	"github.com/plotline/plotline/internal/logging"
)

// PlotService is the gateway to the plot catalog. List is open to anyone;
// Detail and ExpressInterest require a session token and return
// api.ErrUnauthorized without touching the network when none is stored.
type PlotService interface {
	List(ctx context.Context) ([]models.PlotSummary, error)

	Detail(ctx context.Context, id int64) (*models.PlotDetail, error)

	// ExpressInterest records a lead and returns the generated reference id.
	ExpressInterest(ctx context.Context, id int64) (string, error)

	// Interests lists recorded leads; requires the admin token.
	Interests(ctx context.Context) ([]models.Interest, error)
}

type plotService struct {
	client   api.Client
	sessions session.Store
	log      logging.Logger

	// collapses concurrent detail fetches for the same id into one request
	inflight singleflight.Group
}

func NewPlotService(client api.Client, sessions session.Store, log logging.Logger) PlotService {
	return &plotService{client: client, sessions: sessions, log: log.With("component", "plots")}
}

func (p *plotService) List(ctx context.Context) ([]models.PlotSummary, error) {
	plots, err := p.client.ListPlots(ctx)
	if err != nil {
		return nil, err
	}
	p.log.Debug(ctx, "catalog fetched", "count", len(plots))
	return plots, nil
}

func (p *plotService) Detail(ctx context.Context, id int64) (*models.PlotDetail, error) {
	token, err := p.sessions.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, api.ErrUnauthorized
	}

	v, err, _ := p.inflight.Do(strconv.FormatInt(id, 10), func() (any, error) {
		return p.client.GetPlot(ctx, id, token)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.PlotDetail), nil
}

func (p *plotService) ExpressInterest(ctx context.Context, id int64) (string, error) {
	token, err := p.sessions.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", api.ErrUnauthorized
	}

	reference := uuid.NewString()
	if err := p.client.ExpressInterest(ctx, id, token, reference); err != nil {
		return "", err
	}

	p.log.Info(ctx, "interest recorded", "plot", id, "reference", reference)
	return reference, nil
}

func (p *plotService) Interests(ctx context.Context) ([]models.Interest, error) {
	token, err := p.sessions.AdminToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, api.ErrUnauthorized
	}

	return p.client.ListInterests(ctx, token)
}
