// Package auth implements the volunteer login gate: persisted users with
// Argon2id password hashes, a session user keyed in the store, and the
// admin/volunteer role split.
package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/internal/store"
)

const (
	usersKey       = "users"
	currentUserKey = "currentUser"
)

// Role separates the coordinator surfaces from the volunteer ones.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
)

// ErrInvalidCredentials is returned when the name or password is wrong.
// Callers must not learn which of the two it was.
var ErrInvalidCredentials = errors.New("invalid name or password")

// ErrNotLoggedIn is returned by operations that need a session user.
var ErrNotLoggedIn = errors.New("not logged in")

// User is one account. PasswordHash is an Argon2id encoding; session
// copies carry it blanked.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Service owns the persisted accounts and the session user.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates an auth service backed by the given store.
func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Seed writes the default accounts on first use; existing accounts are
// left alone.
func (s *Service) Seed() error {
	var existing []User
	err := s.store.Get(usersKey, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check users: %w", err)
	}

	defaults := []struct {
		id       string
		name     string
		role     Role
		password string
	}{
		{"admin-1", "Admin", RoleAdmin, "admin123"},
		{"vol-1", "Sarah Chen", RoleVolunteer, "volunteer123"},
	}

	users := make([]User, 0, len(defaults))
	for _, d := range defaults {
		hash, err := HashPassword(d.password)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		users = append(users, User{ID: d.id, Name: d.name, Role: d.role, PasswordHash: hash})
	}

	if err := s.store.Set(usersKey, users); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	s.logger.Info("Default accounts seeded", zap.Int("users", len(users)))
	return nil
}

// AddUser registers a new account with the given role.
func (s *Service) AddUser(name, password string, role Role) (User, error) {
	if name == "" || password == "" {
		return User{}, errors.New("name and password are required")
	}

	users, err := s.users()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Name == name {
			return User{}, fmt.Errorf("user %q already exists", name)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	added := User{ID: uuid.NewString(), Name: name, Role: role, PasswordHash: hash}
	users = append(users, added)
	if err := s.store.Set(usersKey, users); err != nil {
		return User{}, fmt.Errorf("failed to persist users: %w", err)
	}

	s.logger.Info("Account created", zap.String("name", name), zap.String("role", string(role)))
	added.PasswordHash = ""
	return added, nil
}

// Authenticate checks the name and password against the stored accounts
// and persists the session user on success. The returned session copy
// carries no password hash.
func (s *Service) Authenticate(name, password string) (User, error) {
	users, err := s.users()
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if u.Name != name {
			continue
		}
		ok, err := VerifyPassword(password, u.PasswordHash)
		if err != nil {
			s.logger.Warn("Stored password hash is unreadable", zap.String("user", u.ID), zap.Error(err))
			break
		}
		if !ok {
			break
		}

		session := u
		session.PasswordHash = ""
		if err := s.store.Set(currentUserKey, session); err != nil {
			return User{}, fmt.Errorf("failed to persist session: %w", err)
		}
		s.logger.Info("Login", zap.String("user", u.ID), zap.String("role", string(u.Role)))
		return session, nil
	}

	s.logger.Warn("Failed login attempt", zap.String("name", name))
	return User{}, ErrInvalidCredentials
}

// CurrentUser returns the session user, or nil when nobody is logged in.
func (s *Service) CurrentUser() (*User, error) {
	var user User
	if err := s.store.Get(currentUserKey, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return &user, nil
}

// Logout clears the session user.
func (s *Service) Logout() error {
	if err := s.store.Delete(currentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// RequireAdmin returns the session user when it holds the admin role.
func (s *Service) RequireAdmin() (*User, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	if user.Role != RoleAdmin {
		return nil, fmt.Errorf("%s is not an admin", user.Name)
	}
	return user, nil
}

func (s *Service) users() ([]User, error) {
	var users []User
	if err := s.store.Get(usersKey, &users); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}
