package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/plotline/plotline/internal/client/api"
	"github.com/plotline/plotline/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and attempts to create an
// account. On success the session is stored and the user is logged in.
//
// Service errors are rendered inline and never escape to the REPL: a
// duplicate email or a validation failure is a message, not a failure of
// the command loop. The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	user, err := a.authService.Register(ctx, name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrDuplicateEmail):
			fmt.Println("That email is already registered. Try logging in instead.")
		case errors.Is(err, api.ErrValidation):
			fmt.Println("Registration rejected: please check the name, email and password.")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Could not reach the server. Please try again.")
		default:
			fmt.Println("Registration failed:", err)
		}
		return nil
	}

	a.user = user
	fmt.Printf("Welcome, %s! You are now signed in.\n", user.Name)
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// (identity and token) is persisted; on failure the session is left
// untouched and the error is rendered inline.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrInvalidCredentials):
			fmt.Println("Invalid credentials.")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Could not reach the server. Please try again.")
		default:
			fmt.Println("Login failed:", err)
		}
		return nil
	}

	a.user = user
	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Logout clears the persisted session and the cached identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the current identity, if any.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

// ensureAuthenticated implements the gate in front of detail-level actions.
// With a session present it reports true. Otherwise the user is offered the
// auth flow; whatever the outcome, the originating action is abandoned (no
// queued retry), so the return is false and the caller goes back to idle.
func (a *App) ensureAuthenticated(ctx context.Context) (bool, error) {
	user, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	if user != nil {
		a.user = user
		return true, nil
	}

	choice, err := getSimpleText(a.reader,
		"You need an account for that. Type 'login' or 'register', or press Enter to cancel", os.Stdout)
	if err != nil {
		return false, err
	}

	switch choice {
	case "login":
		if err := a.Login(ctx); err != nil {
			return false, err
		}
	case "register":
		if err := a.Register(ctx); err != nil {
			return false, err
		}
	default:
		fmt.Println("Cancelled.")
		return false, nil
	}

	if a.isLoggedIn() {
		fmt.Println("You are signed in now; run the command again.")
	}
	return false, nil
}
