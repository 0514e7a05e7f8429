package basic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/service"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for testing.
type mockUserService struct {
	listUsersFunc  func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	getUserFunc    func(ctx context.Context, id int64) (models.User, error)
	createUserFunc func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	deleteUserFunc func(ctx context.Context, id int64) error
}

func (m *mockUserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return m.listUsersFunc(ctx, filter)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFunc(ctx, id)
}

func (m *mockUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.createUserFunc(ctx, req)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.deleteUserFunc(ctx, id)
}

// newRouterWithUserService builds a routed handler whose UserService is
// replaced with the provided mock. Requests go through Init() so that the
// {id} route parameter resolves.
func newRouterWithUserService(t *testing.T, svc service.UserService) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{UserService: svc}, logger.Nop())
	return h.Init()
}

// errorMessage decodes the shared {"error": "..."} payload.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// ─────────────────────────────────────────────
// GET /api/users
// ─────────────────────────────────────────────

// TestListUsers_ReturnsEnvelope checks that the list endpoint wraps the
// collection in the users/count envelope with count matching the slice.
func TestListUsers_ReturnsEnvelope(t *testing.T) {
	svc := &mockUserService{
		listUsersFunc: func(_ context.Context, _ models.UserFilter) ([]models.User, error) {
			return []models.User{
				{ID: 1, Name: "Alice", Email: "alice@example.com"},
				{ID: 2, Name: "Bob", Email: "bob@example.com"},
			}, nil
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Users, 2)
}

// TestListUsers_PassesQueryParams checks that skip, limit and search reach
// the service untouched.
func TestListUsers_PassesQueryParams(t *testing.T) {
	var got models.UserFilter
	svc := &mockUserService{
		listUsersFunc: func(_ context.Context, filter models.UserFilter) ([]models.User, error) {
			got = filter
			return nil, nil
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users?skip=5&limit=20&search=ali", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.UserFilter{Search: "ali", Skip: 5, Limit: 20}, got)
}

// TestListUsers_MalformedParamsDefaultToZero checks that non-numeric skip
// and limit fall back to zero instead of failing the request.
func TestListUsers_MalformedParamsDefaultToZero(t *testing.T) {
	var got models.UserFilter
	svc := &mockUserService{
		listUsersFunc: func(_ context.Context, filter models.UserFilter) ([]models.User, error) {
			got = filter
			return nil, nil
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users?skip=abc&limit=xyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, got.Skip)
	assert.Zero(t, got.Limit)
}

// TestListUsers_EmptyStore checks the zero-count envelope on an empty list.
func TestListUsers_EmptyStore(t *testing.T) {
	svc := &mockUserService{
		listUsersFunc: func(_ context.Context, _ models.UserFilter) ([]models.User, error) {
			return nil, nil
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

// ─────────────────────────────────────────────
// GET /api/users/{id}
// ─────────────────────────────────────────────

func TestGetUser_Found(t *testing.T) {
	svc := &mockUserService{
		getUserFunc: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, int64(7), id)
			return models.User{ID: 7, Name: "Alice", Email: "alice@example.com"}, nil
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Alice", user.Name)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := &mockUserService{
		getUserFunc: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", errorMessage(t, rec))
}

func TestGetUser_MalformedID(t *testing.T) {
	svc := &mockUserService{
		getUserFunc: func(_ context.Context, _ int64) (models.User, error) {
			t.Fatal("service must not be called for a malformed id")
			return models.User{}, nil
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/users
// ─────────────────────────────────────────────

// TestCreateUser_Success checks the 201 response with the stored record,
// including the server-assigned id.
func TestCreateUser_Success(t *testing.T) {
	svc := &mockUserService{
		createUserFunc: func(_ context.Context, req models.CreateUserRequest) (models.User, error) {
			return models.User{ID: 1, Name: req.Name, Email: req.Email, Age: req.Age}, nil
		},
	}
	router := newRouterWithUserService(t, svc)

	body := `{"name":"Alice","email":"alice@example.com","age":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, 30, user.Age)
}

// TestCreateUser_Validation checks that each rejected payload gets its own
// message and never reaches the service.
func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "malformed json",
			body:      `{not json`,
			wantError: "No data provided",
		},
		{
			name:      "empty body",
			body:      ``,
			wantError: "No data provided",
		},
		{
			name:      "missing name",
			body:      `{"email":"alice@example.com"}`,
			wantError: "Name is required",
		},
		{
			name:      "missing email",
			body:      `{"name":"Alice"}`,
			wantError: "Email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockUserService{
				createUserFunc: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
					t.Fatal("service must not be called for an invalid payload")
					return models.User{}, nil
				},
			}
			router := newRouterWithUserService(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc := &mockUserService{
		createUserFunc: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	router := newRouterWithUserService(t, svc)

	body := `{"name":"Alice","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already exists", errorMessage(t, rec))
}

// ─────────────────────────────────────────────
// DELETE /api/users/{id}
// ─────────────────────────────────────────────

func TestDeleteUser_Success(t *testing.T) {
	var deletedID int64
	svc := &mockUserService{
		deleteUserFunc: func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(3), deletedID)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc := &mockUserService{
		deleteUserFunc: func(_ context.Context, _ int64) error {
			return store.ErrUserNotFound
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", errorMessage(t, rec))
}

// ─────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────

// TestWithTraceID_GeneratesAndEchoes checks both halves of the trace-id
// contract: a fresh id is generated when the caller sends none, and a
// caller-supplied id is echoed back unchanged.
func TestWithTraceID_GeneratesAndEchoes(t *testing.T) {
	svc := &mockUserService{
		listUsersFunc: func(_ context.Context, _ models.UserFilter) ([]models.User, error) {
			return nil, nil
		},
	}
	router := newRouterWithUserService(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("X-Trace-ID", "trace-42")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
}

// TestHome_ListsEndpoints checks that the index page is plain text and
// mentions both resource roots.
func TestHome_ListsEndpoints(t *testing.T) {
	router := newRouterWithUserService(t, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/users")
	assert.Contains(t, rec.Body.String(), "/api/posts")
}
