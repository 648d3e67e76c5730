package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrDuplicateEmail = errors.New("a user with this email already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrNoSession = errors.New("no active session")

// User is the full stored account record. PasswordSecret is kept verbatim:
// credential matching is an exact string comparison against stored state.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordSecret string    `json:"password"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Session is the authenticated-identity projection of a User. It omits the
// credential and is what gets persisted across restarts.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionOf derives the persistable projection from a full user record.
func SessionOf(u User) Session {
	return Session{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Valid reports whether a restored session is structurally usable.
// Restored sessions are not re-checked against the user collection.
func (s Session) Valid() bool {
	return s.ID != "" && s.Email != ""
}
