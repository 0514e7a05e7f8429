package service

import (
	"context"

	"github.com/mpetrashin/go-web-fundamentals/models"
)

// UserService holds the business rules shared by both API servers for user
// records: list defaults, input checks, and uniqueness handling.
type UserService interface {
	// ListUsers applies pagination defaults (skip 0, limit 10, limit
	// capped at 100) and returns the matching users.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	// GetUser returns the user with the given id or store.ErrUserNotFound.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser validates the request and stores a new user. Returns
	// ErrInvalidDataProvided on missing name/email and
	// store.ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// DeleteUser removes the user with the given id or returns
	// store.ErrUserNotFound.
	DeleteUser(ctx context.Context, id int64) error
}

// PostService holds the business rules for post records, including the
// resolution of the owning user at creation time.
type PostService interface {
	// ListPosts applies pagination defaults and returns the matching
	// posts, optionally restricted to one owning user.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)

	// GetPost returns the post with the given id or store.ErrPostNotFound.
	GetPost(ctx context.Context, id int64) (models.Post, error)

	// CreatePost validates the request, resolves the owning user, copies
	// the user's name into Author, and stores the post. Returns
	// ErrInvalidDataProvided on missing fields and store.ErrUserNotFound
	// when the referenced user does not exist; in the latter case nothing
	// is stored.
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error)

	// DeletePost removes the post with the given id or returns
	// store.ErrPostNotFound.
	DeletePost(ctx context.Context, id int64) error
}
