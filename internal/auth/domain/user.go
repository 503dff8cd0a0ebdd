package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/smartpanda/restaurant/internal/validation"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Roles lists the assignable roles in menu order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleStaff, RoleCustomer}
}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", validation.Errorf("role", "unknown role %q", s)
}

// User is one entry of the users document, keyed by username. The
// password field carries the hex SHA-256 of the cleartext; that format is
// fixed by the persisted document.
type User struct {
	Username     string `json:"username" validate:"required,min=3"`
	FullName     string `json:"full_name"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=7"`
	Address      string `json:"address"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
}

// IsWorker reports whether the user shows up in the workers listing.
func (u User) IsWorker() bool {
	return u.Role == RoleManager || u.Role == RoleStaff
}

func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Session is the single-slot identity of the acting user. The zero value
// means logged out.
type Session struct {
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

func (s Session) LoggedIn() bool { return s.Username != "" }

// RequireRole is the access policy gate: every role-restricted operation
// calls it before doing anything else.
func RequireRole(s Session, roles ...Role) error {
	if !s.LoggedIn() {
		return ErrPermissionDenied
	}
	for _, r := range roles {
		if s.Role == r {
			return nil
		}
	}
	return ErrPermissionDenied
}
