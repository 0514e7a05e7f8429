package apiclient

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrashin/go-web-fundamentals/internal/handler/basic"
	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/service"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestClient starts a full in-memory server stack and returns a client
// pointed at it.
func newTestClient(t *testing.T) *Client {
	t.Helper()

	memory := store.NewMemoryStorage()
	storages := &store.Storages{UserRepository: memory, PostRepository: memory}
	services := service.NewServices(storages, logger.Nop())
	router := basic.NewHandler(services, logger.Nop()).Init()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:    srv.URL,
		PathPrefix: "/api",
		Timeout:    5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return client
}

// ─────────────────────────────────────────────
// NewClient
// ─────────────────────────────────────────────

// TestNewClient_BaseURLValidation checks address normalization: a bare
// host:port is accepted, garbage is not.
func TestNewClient_BaseURLValidation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "full url", baseURL: "http://localhost:8080", wantErr: false},
		{name: "bare host port", baseURL: "localhost:8080", wantErr: false},
		{name: "empty", baseURL: "", wantErr: true},
		{name: "whitespace only", baseURL: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(Config{BaseURL: tt.baseURL}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ─────────────────────────────────────────────
// End to end against the basic server
// ─────────────────────────────────────────────

// TestClient_UserLifecycle drives a full create/get/list/delete cycle
// through the real server stack.
func TestClient_UserLifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateUser(ctx, models.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Age:   30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Alice", created.Name)

	fetched, err := client.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Email, fetched.Email)

	list, err := client.ListUsers(ctx, models.UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)

	require.NoError(t, client.DeleteUser(ctx, created.ID))

	_, err = client.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestClient_DuplicateEmail checks that the 409 response surfaces as
// ErrConflict carrying the server's message.
func TestClient_DuplicateEmail(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.CreateUser(ctx, models.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = client.CreateUser(ctx, models.CreateUserRequest{Name: "Alison", Email: "alice@example.com"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Email already exists")
}

// TestClient_ValidationError checks that a 400 surfaces as ErrBadRequest.
func TestClient_ValidationError(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateUser(context.Background(), models.CreateUserRequest{Email: "alice@example.com"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Name is required")
}

// TestClient_PostLifecycle drives posts end to end, including the
// denormalized author name and the 404 on an unknown owner.
func TestClient_PostLifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	owner, err := client.CreateUser(ctx, models.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	post, err := client.CreatePost(ctx, models.CreatePostRequest{
		Title:   "First",
		Content: "Hello",
		UserID:  owner.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", post.Author)

	_, err = client.CreatePost(ctx, models.CreatePostRequest{Title: "Orphan", Content: "x", UserID: 99})
	require.ErrorIs(t, err, ErrNotFound)

	list, err := client.ListPosts(ctx, models.PostFilter{UserID: owner.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)

	require.NoError(t, client.DeletePost(ctx, post.ID))

	_, err = client.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestClient_ListPagination checks that skip and limit reach the server
// and shape the page.
func TestClient_ListPagination(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	names := []string{"Alice", "Bob", "Carol", "Dave"}
	for i, name := range names {
		_, err := client.CreateUser(ctx, models.CreateUserRequest{
			Name:  name,
			Email: name + "@example.com",
			Age:   20 + i,
		})
		require.NoError(t, err)
	}

	page, err := client.ListUsers(ctx, models.UserFilter{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 2, page.Count)
	assert.Equal(t, "Bob", page.Users[0].Name)
	assert.Equal(t, "Carol", page.Users[1].Name)
}
