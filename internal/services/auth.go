package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/models"
)

// AuthService manages one session: Anonymous -> Login/Register ->
// Authenticated -> Logout -> Anonymous.
//
// Passwords are accepted and ignored; there is no credential check.
type AuthService interface {
	Current() models.AuthState
	Login(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, name, email, password string) (models.User, error)
	Logout(ctx context.Context) error
}

// session is the explicit session object. Every state change is written to
// the session cache.
type session struct {
	mu            sync.Mutex
	state         models.AuthState
	store         SessionStore
	users         UserService
	autoProvision bool
	log           logging.Logger
}

// NewAuthService rehydrates the session from store. A missing cache means
// anonymous.
//
// With autoProvision set, Login creates a user for an unknown email;
// otherwise it fails with common.ErrorUnauthorized.
func NewAuthService(ctx context.Context, store SessionStore, users UserService, autoProvision bool, log logging.Logger) (AuthService, error) {
	cached, err := store.LoadAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	s := &session{
		state:         models.Anonymous(),
		store:         store,
		users:         users,
		autoProvision: autoProvision,
		log:           log.With("module", "auth"),
	}
	if cached != nil {
		s.state = cached.Normalize()
	}
	return s, nil
}

// Current returns a copy of the session state.
func (s *session) Current() models.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Normalize()
}

// Login signs in the user with exactly this email, stamping lastLogin. An
// unknown email provisions a new user named after the email's local part.
func (s *session) Login(ctx context.Context, email, _ string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users.FindByEmail(email); ok {
		ts := timestamp()
		if err := s.users.Update(ctx, existing.ID, models.UserPatch{LastLogin: &ts}); err != nil {
			return models.User{}, err
		}
		updated, ok := s.users.Get(existing.ID)
		if !ok {
			return models.User{}, fmt.Errorf("user %s: %w", existing.ID, common.ErrorNotFound)
		}
		s.log.Debug(ctx, "login", "id", updated.ID)
		return updated, s.authenticate(ctx, updated)
	}

	if !s.autoProvision {
		s.log.Warn(ctx, "login for unknown email refused")
		return models.User{}, fmt.Errorf("no user with email %q: %w", email, common.ErrorUnauthorized)
	}

	created, err := s.create(ctx, models.NameFromEmail(email), email)
	if err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "user provisioned on login", "id", created.ID)
	return created, s.authenticate(ctx, created)
}

// Register always creates a new user, even when the email is taken.
func (s *session) Register(ctx context.Context, name, email, _ string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.create(ctx, name, email)
	if err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "user registered", "id", created.ID)
	return created, s.authenticate(ctx, created)
}

func (s *session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug(ctx, "logout", "id", s.state.UserID())
	return s.setState(ctx, models.Anonymous())
}

func (s *session) create(ctx context.Context, name, email string) (models.User, error) {
	ts := timestamp()
	return s.users.Create(ctx, models.User{
		Name:      name,
		Email:     email,
		IsAdmin:   models.IsAdminEmail(email),
		CreatedAt: ts,
		LastLogin: ts,
	})
}

func (s *session) authenticate(ctx context.Context, u models.User) error {
	return s.setState(ctx, models.Authenticated(u))
}

func (s *session) setState(ctx context.Context, state models.AuthState) error {
	s.state = state
	if err := s.store.SaveAuth(ctx, state); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
