package application

import (
	"context"

	"github.com/smartpanda/restaurant/internal/auth/domain"
)

type UserRepository interface {
	// Load returns the users document keyed by username, or an empty map
	// when nothing was persisted yet.
	Load(ctx context.Context) (map[string]domain.User, error)

	// Save replaces the persisted users document.
	Save(ctx context.Context, users map[string]domain.User) error
}

type SessionRepository interface {
	// Load returns the stored session; logged out is the zero value.
	Load(ctx context.Context) (domain.Session, error)

	// Save replaces the single-slot session document.
	Save(ctx context.Context, session domain.Session) error
}
