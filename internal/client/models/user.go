package models

// User is the authenticated identity as reported by the backend.
// The credential hash never leaves the server.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
