package store

import (
	"context"

	"github.com/mpetrashin/go-web-fundamentals/models"
)

// UserRepository is the persistence contract for user records. Both API
// servers receive an implementation by injection; handlers never touch
// storage state directly.
//
// Insert assigns the record identifier: implementations must reserve the
// next id and store the record as one atomic operation, so concurrent
// inserts can neither race nor ever produce a reused id.
type UserRepository interface {
	// ListUsers returns users matching the filter, in ascending id order,
	// together with the count of returned records.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	// GetUser returns the user with the given id or ErrUserNotFound.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser stores a new user, assigning ID and CreatedAt. Returns
	// ErrEmailAlreadyExists if the email is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the user with the given id or returns
	// ErrUserNotFound. The id is never reassigned afterwards.
	DeleteUser(ctx context.Context, id int64) error
}

// PostRepository is the persistence contract for post records.
type PostRepository interface {
	// ListPosts returns posts matching the filter, in ascending id order.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)

	// GetPost returns the post with the given id or ErrPostNotFound.
	GetPost(ctx context.Context, id int64) (models.Post, error)

	// CreatePost stores a new post, assigning ID and CreatedAt. The
	// caller resolves the owning user; the repository does not check the
	// reference.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// DeletePost removes the post with the given id or returns
	// ErrPostNotFound.
	DeletePost(ctx context.Context, id int64) error
}
