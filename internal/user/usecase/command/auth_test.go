package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/catalog-api/internal/user/domain"
	"github.com/tair/catalog-api/internal/user/usecase/command"
	"github.com/tair/catalog-api/pkg/auth"
)

// memoryUserRepo is a map-backed UserRepository for tests
type memoryUserRepo struct {
	users  map[uint]domain.User
	nextID uint
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uint]domain.User), nextID: 1}
}

func (r *memoryUserRepo) Create(user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) FindByID(id uint) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepo) Update(user *domain.User) error {
	r.users[user.ID] = *user
	return nil
}

func register(t *testing.T, repo domain.UserRepository, username, email string) *domain.User {
	t.Helper()
	user, err := command.NewRegisterUserHandler(repo).Handle(context.Background(),
		command.RegisterUserCommand{
			Username: username,
			Email:    email,
			Password: "s3cret",
			FullName: "Test User",
		})
	require.NoError(t, err)
	return user
}

func TestRegisterUserDefaults(t *testing.T) {
	repo := newMemoryUserRepo()
	user := register(t, repo, "maria", "maria@example.com")

	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")
}

func TestRegisterUserConflicts(t *testing.T) {
	repo := newMemoryUserRepo()
	register(t, repo, "maria", "maria@example.com")

	handler := command.NewRegisterUserHandler(repo)

	_, err := handler.Handle(context.Background(), command.RegisterUserCommand{
		Username: "maria", Email: "other@example.com", Password: "s3cret",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)

	_, err = handler.Handle(context.Background(), command.RegisterUserCommand{
		Username: "other", Email: "maria@example.com", Password: "s3cret",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	handler := command.NewRegisterUserHandler(repo)

	_, err := handler.Handle(context.Background(), command.RegisterUserCommand{
		Username: "maria", Email: "maria@example.com", Password: "abc",
	})
	assert.Error(t, err)
}

func TestLoginIssuesValidToken(t *testing.T) {
	repo := newMemoryUserRepo()
	user := register(t, repo, "maria", "maria@example.com")

	resp, err := command.NewLoginUserHandler(repo).Handle(context.Background(),
		command.LoginUserCommand{Username: "maria", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "maria", claims.Username)
}

func TestLoginFailures(t *testing.T) {
	repo := newMemoryUserRepo()
	user := register(t, repo, "maria", "maria@example.com")

	handler := command.NewLoginUserHandler(repo)

	_, err := handler.Handle(context.Background(), command.LoginUserCommand{
		Username: "maria", Password: "wrong",
	})
	assert.Error(t, err)

	_, err = handler.Handle(context.Background(), command.LoginUserCommand{
		Username: "nobody", Password: "s3cret",
	})
	assert.Error(t, err)

	// deactivated accounts cannot log in
	user.IsActive = false
	require.NoError(t, repo.Update(user))
	_, err = handler.Handle(context.Background(), command.LoginUserCommand{
		Username: "maria", Password: "s3cret",
	})
	assert.Error(t, err)
}
