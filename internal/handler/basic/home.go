package basic

import (
	"net/http"
)

const endpointIndex = `Basic CRUD API

Available endpoints:
  GET    /api/users        - list users (skip, limit, search)
  POST   /api/users        - create user (JSON: name, email, age)
  GET    /api/users/{id}   - get user by id
  DELETE /api/users/{id}   - delete user
  GET    /api/posts        - list posts (user_id, skip, limit)
  POST   /api/posts        - create post (JSON: title, content, user_id)
  GET    /api/posts/{id}   - get post by id
  DELETE /api/posts/{id}   - delete post
`

// home serves a plain-text index of the API surface.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(endpointIndex))
}
