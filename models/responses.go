package models

// UsersResponse is the envelope returned by user list endpoints.
type UsersResponse struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
}

// PostsResponse is the envelope returned by post list endpoints.
type PostsResponse struct {
	Posts []Post `json:"posts"`
	Count int    `json:"count"`
}

// ErrorResponse is the JSON error payload returned on 4xx/5xx statuses by
// both API servers.
type ErrorResponse struct {
	Error string `json:"error"`
}
