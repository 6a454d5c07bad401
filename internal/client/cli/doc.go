// Package cli implements the interactive terminal front end of plotline.
//
// The REPL commands mirror the site's navigation: the property catalog,
// the static About/Services/Contact pages, user registration and login,
// and the admin dashboard. Detail-level actions (show, interest) are
// gated on an authenticated session: without a stored token the user is
// routed into the auth flow and the original action is abandoned.
package cli
