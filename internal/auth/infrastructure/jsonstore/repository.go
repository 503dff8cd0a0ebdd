package jsonstore

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/smartpanda/restaurant/internal/auth/domain"
	"github.com/smartpanda/restaurant/pkg/jsonfile"
)

// UserRepository persists the users document: a JSON object keyed by
// username.
type UserRepository struct {
	log  *slog.Logger
	path string
}

func NewUserRepository(log *slog.Logger, path string) *UserRepository {
	return &UserRepository{log: log, path: path}
}

func (r *UserRepository) Load(ctx context.Context) (map[string]domain.User, error) {
	users := map[string]domain.User{}
	switch err := jsonfile.Read(r.path, &users); {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
	case errors.Is(err, jsonfile.ErrCorrupt):
		r.log.Warn("users document corrupt, starting with empty user database", "path", r.path, "err", err)
		users = map[string]domain.User{}
	default:
		return nil, err
	}
	// Old documents may miss the username field inside the record.
	for name, u := range users {
		if u.Username == "" {
			u.Username = name
			users[name] = u
		}
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, users map[string]domain.User) error {
	if users == nil {
		users = map[string]domain.User{}
	}
	return jsonfile.Write(r.path, users)
}

// SessionRepository persists the single-slot session document: {} while
// logged out.
type SessionRepository struct {
	log  *slog.Logger
	path string
}

func NewSessionRepository(log *slog.Logger, path string) *SessionRepository {
	return &SessionRepository{log: log, path: path}
}

func (r *SessionRepository) Load(ctx context.Context) (domain.Session, error) {
	var session domain.Session
	switch err := jsonfile.Read(r.path, &session); {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
	case errors.Is(err, jsonfile.ErrCorrupt):
		r.log.Warn("session document corrupt, treating as logged out", "path", r.path, "err", err)
		session = domain.Session{}
	default:
		return domain.Session{}, err
	}
	return session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	return jsonfile.Write(r.path, session)
}
