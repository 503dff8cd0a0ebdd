package application

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/smartpanda/restaurant/internal/auth/domain"
	"github.com/smartpanda/restaurant/internal/validation"
)

// RegisterInput is the cleartext registration form. The password never
// leaves this package unhashed.
type RegisterInput struct {
	Username string
	FullName string
	Email    string
	Phone    string
	Address  string
	Password string
}

// Service manages accounts and the single-slot session. New users are
// customers; role changes are an admin operation.
type Service struct {
	log      *slog.Logger
	users    UserRepository
	sessions SessionRepository

	all     map[string]domain.User
	current domain.Session
}

func NewService(ctx context.Context, log *slog.Logger, users UserRepository, sessions SessionRepository) (*Service, error) {
	all, err := users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	current, err := sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Service{log: log, users: users, sessions: sessions, all: all, current: current}, nil
}

// Current returns the acting identity; the zero value means logged out.
func (s *Service) Current() domain.Session { return s.current }

func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if strings.TrimSpace(in.Password) == "" {
		return domain.User{}, validation.Errorf("password", "must not be empty")
	}
	u := domain.User{
		Username:     strings.TrimSpace(in.Username),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		PasswordHash: domain.HashPassword(in.Password),
		Role:         domain.RoleCustomer,
	}
	if err := validation.Struct(u); err != nil {
		return domain.User{}, err
	}
	if _, ok := s.all[u.Username]; ok {
		return domain.User{}, domain.ErrUsernameTaken
	}
	for _, existing := range s.all {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.User{}, validation.Errorf("email", "already registered")
		}
		if existing.Phone == u.Phone {
			return domain.User{}, validation.Errorf("phone", "already registered")
		}
	}

	next := maps.Clone(s.all)
	if next == nil {
		next = map[string]domain.User{}
	}
	next[u.Username] = u
	if err := s.users.Save(ctx, next); err != nil {
		return domain.User{}, err
	}
	s.all = next
	s.log.Info("user registered", "username", u.Username)
	return u, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (domain.Session, error) {
	u, ok := s.all[username]
	if !ok {
		return domain.Session{}, domain.ErrUserNotFound
	}
	if u.PasswordHash != domain.HashPassword(password) {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	session := domain.Session{Username: u.Username, Role: u.Role}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, err
	}
	s.current = session
	s.log.Info("user logged in", "username", username, "role", u.Role)
	return session, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Save(ctx, domain.Session{}); err != nil {
		return err
	}
	s.log.Info("user logged out", "username", s.current.Username)
	s.current = domain.Session{}
	return nil
}

// Users lists all accounts sorted by username. Admin only.
func (s *Service) Users(ctx context.Context, session domain.Session) ([]domain.User, error) {
	if err := domain.RequireRole(session, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.sorted(s.all), nil
}

// SearchUsers matches by username, email, full name or phone. Admin only.
func (s *Service) SearchUsers(ctx context.Context, session domain.Session, key string) ([]domain.User, error) {
	if err := domain.RequireRole(session, domain.RoleAdmin); err != nil {
		return nil, err
	}
	key = strings.ToLower(strings.TrimSpace(key))
	matched := map[string]domain.User{}
	if key == "" {
		return nil, nil
	}
	for name, u := range s.all {
		if strings.Contains(strings.ToLower(u.Username), key) ||
			strings.Contains(strings.ToLower(u.Email), key) ||
			strings.Contains(strings.ToLower(u.FullName), key) ||
			strings.Contains(u.Phone, key) {
			matched[name] = u
		}
	}
	return s.sorted(matched), nil
}

// Workers lists managers and staff. Admin only.
func (s *Service) Workers(ctx context.Context, session domain.Session) ([]domain.User, error) {
	if err := domain.RequireRole(session, domain.RoleAdmin); err != nil {
		return nil, err
	}
	workers := map[string]domain.User{}
	for name, u := range s.all {
		if u.IsWorker() {
			workers[name] = u
		}
	}
	return s.sorted(workers), nil
}

func (s *Service) DeleteUser(ctx context.Context, session domain.Session, username string) error {
	if err := domain.RequireRole(session, domain.RoleAdmin); err != nil {
		return err
	}
	if _, ok := s.all[username]; !ok {
		return domain.ErrUserNotFound
	}
	next := maps.Clone(s.all)
	delete(next, username)
	if err := s.users.Save(ctx, next); err != nil {
		return err
	}
	s.all = next
	s.log.Info("user deleted", "username", username)
	return nil
}

func (s *Service) UpdateRole(ctx context.Context, session domain.Session, username string, role domain.Role) error {
	if err := domain.RequireRole(session, domain.RoleAdmin); err != nil {
		return err
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return err
	}
	u, ok := s.all[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	next := maps.Clone(s.all)
	next[username] = u
	if err := s.users.Save(ctx, next); err != nil {
		return err
	}
	s.all = next
	s.log.Info("role updated", "username", username, "role", role)
	return nil
}

func (s *Service) sorted(users map[string]domain.User) []domain.User {
	out := slices.Collect(maps.Values(users))
	slices.SortFunc(out, func(a, b domain.User) int {
		return strings.Compare(a.Username, b.Username)
	})
	return out
}
