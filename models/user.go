package models

import "time"

// User represents a registered account record served by both CRUD APIs.
// All instances live in the injected store; nothing outside the store
// layer may assign identifiers.
type User struct {
	// ID is the unique identifier of the user. It is assigned by the
	// store from a strictly monotonic counter and is never reused, even
	// after the user is deleted.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the user's email address. Uniqueness is enforced for the
	// lifetime of the store: creating a second user with the same email
	// fails with ErrEmailAlreadyExists.
	Email string `json:"email"`

	// Age is the user's age in years. Optional; the declaratively
	// validated API restricts it to the 0..150 range.
	Age int `json:"age,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	// Server-assigned; client-provided values are ignored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
