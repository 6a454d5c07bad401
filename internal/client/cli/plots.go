package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/plotline/plotline/internal/client/api"
	"github.com/plotline/plotline/internal/client/models"
)

// Properties fetches and renders the catalog. Open to anyone; each call
// replaces whatever listing was shown before.
func (a *App) Properties(ctx context.Context) error {
	plots, err := a.plotService.List(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Println("Could not load properties: server unreachable.")
			return nil
		}
		fmt.Println("Could not load properties:", err)
		return nil
	}

	if len(plots) == 0 {
		fmt.Println("No properties available right now.")
		return nil
	}

	fmt.Println("Available properties:")
	for _, p := range plots {
		fmt.Printf("  [%d] %s — %s, %s | %.0f sqft | %.0f lakhs\n",
			p.ID, p.Name, p.Location, p.Address, p.SquareFeet, p.Price)
	}
	return nil
}

// Show renders the full detail of one plot. The action is gated: without a
// session the user is routed into the auth flow and the action is abandoned.
// A token the backend rejects clears the session so the next attempt
// prompts again; the previously displayed listing is never altered by a
// failed fetch.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: show <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: show <id>")
		return nil
	}

	ok, err := a.ensureAuthenticated(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	detail, err := a.plotService.Detail(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Println("Your session is no longer valid. Please log in again.")
			if err := a.Logout(ctx); err != nil {
				return err
			}
		case errors.Is(err, api.ErrNotFound):
			fmt.Printf("Property %d was not found.\n", id)
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Could not load the property: server unreachable.")
		default:
			fmt.Println("Could not load the property:", err)
		}
		return nil
	}

	renderDetail(detail)
	return nil
}

// Interest records a buyer lead for a plot. Gated the same way as Show.
func (a *App) Interest(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: interest <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: interest <id>")
		return nil
	}

	ok, err := a.ensureAuthenticated(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	reference, err := a.plotService.ExpressInterest(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Println("Your session is no longer valid. Please log in again.")
			if err := a.Logout(ctx); err != nil {
				return err
			}
		case errors.Is(err, api.ErrNotFound):
			fmt.Printf("Property %d was not found.\n", id)
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Could not record your interest: server unreachable.")
		default:
			fmt.Println("Could not record your interest:", err)
		}
		return nil
	}

	fmt.Printf("Thanks! We recorded your interest in property %d (reference %s). Our team will reach out.\n", id, reference)
	return nil
}

func renderDetail(d *models.PlotDetail) {
	fmt.Printf("%s\n", d.Name)
	fmt.Printf("  Location:    %s\n", d.Location)
	fmt.Printf("  Address:     %s\n", d.Address)
	fmt.Printf("  Area:        %.0f sqft\n", d.SquareFeet)
	fmt.Printf("  Price:       %.0f lakhs\n", d.Price)
	if d.Facing != "" {
		fmt.Printf("  Facing:      %s\n", d.Facing)
	}
	if d.Boundary != "" {
		fmt.Printf("  Boundary:    %s\n", d.Boundary)
	}
	if d.Description != "" {
		fmt.Printf("  Description: %s\n", d.Description)
	}
	if len(d.Amenities) > 0 {
		fmt.Printf("  Amenities:   %s\n", strings.Join(d.Amenities, ", "))
	}
}
