package ports

import (
	"context"

	"github.com/sulabook/sulabook/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// ProfilePatch holds optional profile updates. Nil fields are left untouched.
type ProfilePatch struct {
	Name  *string
	Email *string
}

// SessionService owns registration, login, logout and profile updates, and
// tracks the current in-memory session.
type SessionService interface {
	// Restore adopts a previously persisted session, if one exists and is
	// structurally valid. Called once at process start.
	Restore(ctx context.Context)

	Register(ctx context.Context, input RegisterInput) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch ProfilePatch) (*domain.Session, error)

	// Current returns the active session, or nil when logged out.
	Current() *domain.Session
}
