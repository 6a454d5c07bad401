package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Properties(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Interest(ctx context.Context, args []string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Admin(ctx context.Context, args []string) error
	About()
	Services()
	Contact()
}

// runREPL starts a simple read–eval–print loop for the plotline CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The commands mirror the site routes:
//
//	properties | list  — the catalog
//	show <id>          — property detail (requires login)
//	interest <id>      — record a lead (requires login)
//	about, services, contact
//	register, login, logout, whoami
//	admin <login|dashboard|logout>
//	help, exit | quit
//
// Any errors returned by command handlers are ignored here; handlers render
// their own errors inline. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("plotline %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: properties, show <id>, interest <id>, about, services, contact, whoami, admin, logout, exit")
			} else {
				printlnFn("Available commands: properties, show <id>, interest <id>, about, services, contact, register, login, admin, exit")
			}

		case "properties", "list":
			_ = a.Properties(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "interest":
			_ = a.Interest(ctx, args)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "admin":
			_ = a.Admin(ctx, args)

		case "about":
			a.About()

		case "services":
			a.Services()

		case "contact":
			a.Contact()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root prints the banner and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to plotline (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
