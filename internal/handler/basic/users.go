package basic

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := models.UserFilter{
		Search: r.URL.Query().Get("search"),
		Skip:   queryInt(r, "skip"),
		Limit:  queryInt(r, "limit"),
	}

	users, err := h.services.UserService.ListUsers(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("error listing users")
		writeError(w, "error listing users", statusFromError(err))
		return
	}

	_, _ = writeJSON(w, models.UsersResponse{Users: users, Count: len(users)}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user not found")
		writeError(w, "User not found", statusFromError(err))
		return
	}

	_, _ = writeJSON(w, user, http.StatusOK)
}

// createUser validates the payload by hand, one field at a time, so each
// missing field gets its own message. The declaratively validated
// counterpart lives in the rest package.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "No data provided", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		writeError(w, "Name is required", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		writeError(w, "Email is required", http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", req.Email).Msg("email already exists")
			writeError(w, "Email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", createdUser.ID).Msg("user created")
	_, _ = writeJSON(w, createdUser, http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting user")
		writeError(w, "User not found", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// queryInt parses an optional integer query parameter; absent or malformed
// values yield zero, which the service layer replaces with its defaults.
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
