package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

// ─────────────────────────────────────────────
// Mock repositories
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	listUsersFn  func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	getUserFn    func(ctx context.Context, id int64) (models.User, error)
	createUserFn func(ctx context.Context, user models.User) (models.User, error)
	deleteUserFn func(ctx context.Context, id int64) error
}

func (m *mockUserRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return m.listUsersFn(ctx, filter)
}

func (m *mockUserRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	return m.deleteUserFn(ctx, id)
}

// ─────────────────────────────────────────────
// ListUsers
// ─────────────────────────────────────────────

// TestUserService_ListUsers_AppliesDefaults verifies that unset pagination
// fields receive the default limit and that oversized limits are capped.
func TestUserService_ListUsers_AppliesDefaults(t *testing.T) {
	var gotFilter models.UserFilter
	repo := &mockUserRepository{
		listUsersFn: func(_ context.Context, filter models.UserFilter) ([]models.User, error) {
			gotFilter = filter
			return []models.User{}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.ListUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, gotFilter.Limit)
	assert.Equal(t, 0, gotFilter.Skip)

	_, err = svc.ListUsers(context.Background(), models.UserFilter{Skip: -5, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, MaxListLimit, gotFilter.Limit)
	assert.Equal(t, 0, gotFilter.Skip)
}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

// TestUserService_CreateUser_Success verifies that a valid request reaches
// the repository and the stored record is returned.
func TestUserService_CreateUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.ID = 1
			return user, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	created, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Age:   30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, 30, created.Age)
}

// TestUserService_CreateUser_MissingFields verifies that presence checks run
// before the repository is touched.
func TestUserService_CreateUser_MissingFields(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("repository must not be called for invalid input")
			return models.User{}, nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "Alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// TestUserService_CreateUser_DuplicateEmail verifies that the store's
// uniqueness error is passed through wrapped.
func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// GetUser / DeleteUser
// ─────────────────────────────────────────────

// TestUserService_GetUser_NotFound verifies the wrapped not-found error.
func TestUserService_GetUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, logger.Nop())

	_, err := svc.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// TestUserService_DeleteUser verifies both outcomes of deletion.
func TestUserService_DeleteUser(t *testing.T) {
	deleted := map[int64]bool{1: true}
	repo := &mockUserRepository{
		deleteUserFn: func(_ context.Context, id int64) error {
			if !deleted[id] {
				return store.ErrUserNotFound
			}
			return nil
		},
	}
	svc := NewUserService(repo, logger.Nop())

	assert.NoError(t, svc.DeleteUser(context.Background(), 1))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 2), store.ErrUserNotFound)
}
