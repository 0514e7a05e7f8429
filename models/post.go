package models

import "time"

// Post represents an article record owned by a user. A post can only be
// created for an existing user; the owning user is resolved at creation
// time.
type Post struct {
	// ID is the unique identifier of the post, assigned by the store
	// from a strictly monotonic counter and never reused.
	ID int64 `json:"id"`

	// Title is the post headline.
	Title string `json:"title"`

	// Content is the post body text.
	Content string `json:"content"`

	// UserID references the user that owns the post. It must match an
	// existing user record at creation time.
	UserID int64 `json:"user_id"`

	// Author is the owning user's name, copied at creation time. It is
	// deliberately denormalized: a later change to the user record does
	// not update it.
	Author string `json:"author"`

	// CreatedAt is the timestamp when the record was created.
	// Server-assigned.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
