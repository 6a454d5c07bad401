// Package api implements the HTTP transport to the plot-listing backend:
// the Client interface, its net/http implementation, and the sentinel
// error taxonomy shared by all callers.
package api
