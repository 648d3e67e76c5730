package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sulabook/sulabook/internal/core/domain"
	"github.com/sulabook/sulabook/internal/core/ports"
	"github.com/sulabook/sulabook/internal/core/storage"
)

// SessionService implements registration, login, logout and profile updates.
// It holds the single in-memory session for the process.
type SessionService struct {
	kv       ports.KVStore
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
	current  *domain.Session
}

func NewSessionService(kv ports.KVStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		kv:       kv,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// Restore adopts a persisted session if one exists and is structurally valid.
// The session is not re-checked against the user collection.
func (s *SessionService) Restore(ctx context.Context) {
	sess := storage.ReadOne[domain.Session](ctx, s.kv, ports.KeySession)
	if sess == nil || !sess.Valid() {
		return
	}
	s.current = sess
	s.log.Debug().Str("user_id", sess.ID).Msg("session restored")
}

// Register creates a new account and establishes a session for it. The very
// first registrant becomes admin; everyone after is a regular user. Email
// uniqueness is an exact, case-sensitive match.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Session, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registration input: %w", err)
	}

	users := storage.ReadAll[domain.User](ctx, s.kv, ports.KeyUsers)
	for _, u := range users {
		if u.Email == input.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	role := domain.RoleUser
	if len(users) == 0 {
		role = domain.RoleAdmin
	}

	user := domain.User{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Email:          input.Email,
		PasswordSecret: input.Password,
		Role:           role,
		CreatedAt:      s.now().UTC(),
	}

	users = append(users, user)
	if err := storage.WriteAll(ctx, s.kv, ports.KeyUsers, users); err != nil {
		s.log.Error().Err(err).Msg("failed to persist users")
		return nil, err
	}

	sess, err := s.establish(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return sess, nil
}

// Login matches email and password exactly against the stored collection.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	users := storage.ReadAll[domain.User](ctx, s.kv, ports.KeyUsers)
	for _, u := range users {
		if u.Email == email && u.PasswordSecret == password {
			sess, err := s.establish(ctx, u)
			if err != nil {
				return nil, err
			}
			s.log.Info().Str("user_id", u.ID).Msg("user logged in")
			return sess, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout clears the persisted and in-memory session. Idempotent.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := storage.Clear(ctx, s.kv, ports.KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.current = nil
	return nil
}

// UpdateProfile merges the patch into the current user's record and
// re-derives the session. Silent no-op when logged out or when the session's
// user no longer exists. Email uniqueness is not re-checked here.
func (s *SessionService) UpdateProfile(ctx context.Context, patch ports.ProfilePatch) (*domain.Session, error) {
	if s.current == nil {
		return nil, nil
	}

	users := storage.ReadAll[domain.User](ctx, s.kv, ports.KeyUsers)
	idx := -1
	for i, u := range users {
		if u.ID == s.current.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	if patch.Name != nil {
		users[idx].Name = *patch.Name
	}
	if patch.Email != nil {
		users[idx].Email = *patch.Email
	}

	if err := storage.WriteAll(ctx, s.kv, ports.KeyUsers, users); err != nil {
		s.log.Error().Err(err).Msg("failed to persist users")
		return nil, err
	}

	sess, err := s.establish(ctx, users[idx])
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", sess.ID).Msg("profile updated")
	return sess, nil
}

// Current returns the active session, or nil when logged out.
func (s *SessionService) Current() *domain.Session {
	return s.current
}

// establish persists the session projection of user and makes it current.
func (s *SessionService) establish(ctx context.Context, user domain.User) (*domain.Session, error) {
	sess := domain.SessionOf(user)
	if err := storage.WriteOne(ctx, s.kv, ports.KeySession, sess); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
		return nil, err
	}
	s.current = &sess
	return &sess, nil
}
