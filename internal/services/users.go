package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/eventhub/internal/logging"
	"github.com/dmitrijs2005/eventhub/internal/models"
)

// UserService is the in-memory authority for user records.
//
// Contract:
//   - List and Search preserve insertion order.
//   - FindByEmail is a case-sensitive exact match; the first match wins.
//   - Update, Delete, ToggleAdmin and SetActive on an unknown id are silent
//     no-ops.
//   - Toggles touch exactly one user and do not revisit the current session.
type UserService interface {
	List() []models.User
	Get(id string) (models.User, bool)
	FindByEmail(email string) (models.User, bool)
	Search(term string) []models.User
	Create(ctx context.Context, u models.User) (models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) error
	Delete(ctx context.Context, id string) error
	ToggleAdmin(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

type userService struct {
	mu    sync.Mutex
	store UserStore
	users *orderedMap[models.User]
	log   logging.Logger
}

// NewUserService loads the stored users.
func NewUserService(ctx context.Context, store UserStore, log logging.Logger) (UserService, error) {
	stored, err := store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	s := &userService{
		store: store,
		users: newOrderedMap[models.User](),
		log:   log.With("module", "users"),
	}
	for _, u := range stored {
		s.users.set(u.ID, u.Clone())
	}
	return s, nil
}

func (s *userService) List() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.values(models.User.Clone)
}

func (s *userService) Get(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return models.User{}, false
	}
	return u.Clone(), true
}

func (s *userService) FindByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.users.order {
		if u := s.users.byID[id]; u.Email == email {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

// Search returns the users whose name or email contains term, ignoring
// case. The collection itself is not modified.
func (s *userService) Search(term string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0)
	for _, id := range s.users.order {
		if u := s.users.byID[id]; u.Matches(term) {
			out = append(out, u.Clone())
		}
	}
	return out
}

// Create appends u. An empty id is replaced with a fresh one.
func (s *userService) Create(ctx context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u = u.Clone()
	if u.ID == "" {
		u.ID = newID()
	}
	s.users.set(u.ID, u)

	s.log.Debug(ctx, "user created", "id", u.ID, "email", u.Email, "admin", u.IsAdmin)
	return u.Clone(), s.persist(ctx)
}

func (s *userService) Update(ctx context.Context, id string, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, id, patch)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.users.delete(id) {
		return nil
	}

	s.log.Debug(ctx, "user deleted", "id", id)
	return s.persist(ctx)
}

func (s *userService) ToggleAdmin(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil
	}
	admin := !u.IsAdmin
	return s.apply(ctx, id, models.UserPatch{IsAdmin: &admin})
}

func (s *userService) SetActive(ctx context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, id, models.UserPatch{IsActive: &active})
}

// apply merges patch into the user with id. Callers hold mu.
func (s *userService) apply(ctx context.Context, id string, patch models.UserPatch) error {
	u, ok := s.users.get(id)
	if !ok {
		return nil
	}
	s.users.set(id, patch.Apply(u.Clone()))

	s.log.Debug(ctx, "user updated", "id", id)
	return s.persist(ctx)
}

func (s *userService) persist(ctx context.Context) error {
	if err := s.store.SaveUsers(ctx, s.users.values(models.User.Clone)); err != nil {
		s.log.Error(ctx, "failed to save users", "error", err)
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
