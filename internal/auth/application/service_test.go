package application

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpanda/restaurant/internal/auth/domain"
	"github.com/smartpanda/restaurant/internal/validation"
)

type mockUserRepo struct {
	users map[string]domain.User
}

func (m *mockUserRepo) Load(ctx context.Context) (map[string]domain.User, error) {
	if m.users == nil {
		return map[string]domain.User{}, nil
	}
	return maps.Clone(m.users), nil
}

func (m *mockUserRepo) Save(ctx context.Context, users map[string]domain.User) error {
	m.users = maps.Clone(users)
	return nil
}

type mockSessionRepo struct {
	session domain.Session
}

func (m *mockSessionRepo) Load(ctx context.Context) (domain.Session, error) { return m.session, nil }

func (m *mockSessionRepo) Save(ctx context.Context, s domain.Session) error {
	m.session = s
	return nil
}

var admin = domain.Session{Username: "root", Role: domain.RoleAdmin}

func newTestService(t *testing.T, users *mockUserRepo) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewService(context.Background(), log, users, &mockSessionRepo{})
	require.NoError(t, err)
	return svc
}

func pandaInput() RegisterInput {
	return RegisterInput{
		Username: "panda",
		FullName: "Panda Smart",
		Email:    "panda@example.com",
		Phone:    "0123456789",
		Address:  "1 Bamboo Lane",
		Password: "secret",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, pandaInput())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	assert.Equal(t, domain.HashPassword("secret"), u.PasswordHash)
	assert.NotContains(t, u.PasswordHash, "secret")

	session, err := svc.Login(ctx, "panda", "secret")
	require.NoError(t, err)
	assert.True(t, session.LoggedIn())
	assert.Equal(t, domain.RoleCustomer, session.Role)
	assert.Equal(t, session, svc.Current())
}

func TestLoginFailures(t *testing.T) {
	svc := newTestService(t, &mockUserRepo{})
	ctx := context.Background()
	_, err := svc.Register(ctx, pandaInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ghost", "secret")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Login(ctx, "panda", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, svc.Current().LoggedIn())
}

func TestRegisterUniqueness(t *testing.T) {
	svc := newTestService(t, &mockUserRepo{})
	ctx := context.Background()
	_, err := svc.Register(ctx, pandaInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, pandaInput())
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	in := pandaInput()
	in.Username = "panda2"
	_, err = svc.Register(ctx, in)
	var ve *validation.Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	in.Email = "other@example.com"
	_, err = svc.Register(ctx, in)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)
}

func TestRegisterValidatesFields(t *testing.T) {
	svc := newTestService(t, &mockUserRepo{})
	ctx := context.Background()

	in := pandaInput()
	in.Email = "not-an-email"
	_, err := svc.Register(ctx, in)
	var ve *validation.Error
	assert.ErrorAs(t, err, &ve)

	in = pandaInput()
	in.Password = "   "
	_, err = svc.Register(ctx, in)
	assert.ErrorAs(t, err, &ve)
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := &mockSessionRepo{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewService(context.Background(), log, &mockUserRepo{}, sessions)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), pandaInput())
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), "panda", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.Current().LoggedIn())
	assert.False(t, sessions.session.LoggedIn())
}

func TestAdminOperationsGated(t *testing.T) {
	svc := newTestService(t, &mockUserRepo{})
	ctx := context.Background()
	customer := domain.Session{Username: "panda", Role: domain.RoleCustomer}

	_, err := svc.Users(ctx, customer)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, err = svc.SearchUsers(ctx, customer, "panda")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	_, err = svc.Workers(ctx, customer)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.ErrorIs(t, svc.DeleteUser(ctx, customer, "panda"), domain.ErrPermissionDenied)
	assert.ErrorIs(t, svc.UpdateRole(ctx, customer, "panda", domain.RoleStaff), domain.ErrPermissionDenied)

	// A manager is not enough for user administration either.
	manager := domain.Session{Username: "max", Role: domain.RoleManager}
	_, err = svc.Users(ctx, manager)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUpdateRoleAndWorkers(t *testing.T) {
	svc := newTestService(t, &mockUserRepo{})
	ctx := context.Background()
	_, err := svc.Register(ctx, pandaInput())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateRole(ctx, admin, "panda", domain.RoleStaff))

	workers, err := svc.Workers(ctx, admin)
	require.NoError(t, err)
	require.Len(t, workers, 1)
	assert.Equal(t, "panda", workers[0].Username)

	err = svc.UpdateRole(ctx, admin, "panda", domain.Role("chef"))
	var ve *validation.Error
	assert.ErrorAs(t, err, &ve)

	assert.ErrorIs(t, svc.UpdateRole(ctx, admin, "ghost", domain.RoleStaff), domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()
	_, err := svc.Register(ctx, pandaInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, admin, "panda"))
	assert.NotContains(t, repo.users, "panda")
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin, "panda"), domain.ErrUserNotFound)
}

func TestSearchUsersSorted(t *testing.T) {
	svc := newTestService(t, &mockUserRepo{})
	ctx := context.Background()
	for _, in := range []RegisterInput{
		{Username: "zoe", FullName: "Zoe P", Email: "zoe@example.com", Phone: "111222333", Password: "pw"},
		{Username: "amy", FullName: "Amy P", Email: "amy@example.com", Phone: "444555666", Password: "pw"},
	} {
		_, err := svc.Register(ctx, in)
		require.NoError(t, err)
	}

	got, err := svc.SearchUsers(ctx, admin, "example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "amy", got[0].Username)
	assert.Equal(t, "zoe", got[1].Username)

	got, err = svc.SearchUsers(ctx, admin, "zoe")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
