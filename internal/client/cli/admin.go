package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/plotline/plotline/internal/client/api"
	"github.com/plotline/plotline/internal/shared"
)

// Admin dispatches the admin subcommands: login, dashboard, logout.
// The admin identity uses its own token, independent of the user session.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: admin <login|dashboard|logout>")
		return nil
	}

	switch args[0] {
	case "login":
		return a.adminLogin(ctx)
	case "dashboard":
		return a.adminDashboard(ctx)
	case "logout":
		if err := a.authService.AdminLogout(ctx); err != nil {
			return err
		}
		fmt.Println("Admin logged out.")
		return nil
	default:
		fmt.Println("Usage: admin <login|dashboard|logout>")
		return nil
	}
}

func (a *App) adminLogin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter admin email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.authService.AdminLogin(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, api.ErrInvalidCredentials):
			fmt.Println("Invalid admin credentials.")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Could not reach the server. Please try again.")
		default:
			fmt.Println("Admin login failed:", err)
		}
		return nil
	}

	fmt.Println("Admin signed in.")
	return nil
}

func (a *App) adminDashboard(ctx context.Context) error {
	interests, err := a.plotService.Interests(ctx)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Println("Admin login required. Run 'admin login' first.")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Could not load the dashboard: server unreachable.")
		default:
			fmt.Println("Could not load the dashboard:", err)
		}
		return nil
	}

	if len(interests) == 0 {
		fmt.Println("No recorded interests yet.")
		return nil
	}

	fmt.Println("Recorded interests:")
	for _, i := range interests {
		fmt.Printf("  %s | plot %d | %s | %s\n",
			i.Reference, i.PlotID, i.UserEmail, i.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
