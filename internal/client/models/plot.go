// Package models defines the client-side views of backend entities.
package models

import (
	"errors"
	"time"
)

// ErrBadPlot reports a plot payload that fails schema validation at the
// gateway boundary. Responses are not trusted as-is; see Validate.
var ErrBadPlot = errors.New("malformed plot payload")

// PlotSummary is the list-view representation of a plot, as returned by
// GET /plots. Detail-only fields are absent here.
type PlotSummary struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Address    string  `json:"address"`
	SquareFeet float64 `json:"squareFeet"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

// PlotDetail is the full representation of a plot, as returned by
// GET /plots/{id} for an authorized caller.
type PlotDetail struct {
	PlotSummary
	Images      []string `json:"images"`
	Facing      string   `json:"facing"`
	Boundary    string   `json:"boundary"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// Validate checks the invariants a decoded summary must satisfy before it
// may replace caller state: a positive id and a non-empty name.
func (p *PlotSummary) Validate() error {
	if p.ID <= 0 || p.Name == "" {
		return ErrBadPlot
	}
	return nil
}

// Interest is one recorded buyer lead, as listed on the admin dashboard.
type Interest struct {
	Reference string    `json:"reference"`
	PlotID    int64     `json:"plotId"`
	UserEmail string    `json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
}
