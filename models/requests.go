package models

// CreateUserRequest is the request body accepted by POST /users.
//
// The binding tags drive gin's declarative validation in the rest API;
// the basic API decodes the same shape and checks field presence by hand.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email"`
	Age   int    `json:"age" binding:"gte=0,lte=150"`
}

// CreatePostRequest is the request body accepted by POST /posts.
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required,min=1"`
	UserID  int64  `json:"user_id" binding:"required"`
}

// UserFilter narrows and paginates user list queries.
type UserFilter struct {
	// Search keeps only users whose name contains the term,
	// case-insensitively. Empty means no filtering.
	Search string

	// Skip is the number of matching records to drop from the front of
	// the result, in id order.
	Skip int

	// Limit caps the number of returned records. Zero or negative values
	// fall back to the service default.
	Limit int
}

// PostFilter narrows and paginates post list queries.
type PostFilter struct {
	// UserID keeps only posts owned by the given user. Zero means no
	// filtering.
	UserID int64

	Skip  int
	Limit int
}
