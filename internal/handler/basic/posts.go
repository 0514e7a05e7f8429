package basic

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter := models.PostFilter{
		UserID: int64(queryInt(r, "user_id")),
		Skip:   queryInt(r, "skip"),
		Limit:  queryInt(r, "limit"),
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("error listing posts")
		writeError(w, "error listing posts", statusFromError(err))
		return
	}

	_, _ = writeJSON(w, models.PostsResponse{Posts: posts, Count: len(posts)}, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("post not found")
		writeError(w, "Post not found", statusFromError(err))
		return
	}

	_, _ = writeJSON(w, post, http.StatusOK)
}

// createPost validates field presence by hand and relies on the service to
// resolve the owning user; an unresolved user_id comes back as 404, not 400.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "No data provided", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		writeError(w, "Title is required", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		writeError(w, "Content is required", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		writeError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	createdPost, err := h.services.PostService.CreatePost(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("user_id", req.UserID).Msg("post owner not found")
			writeError(w, "User not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post creation")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", createdPost.ID).Str("author", createdPost.Author).Msg("post created")
	_, _ = writeJSON(w, createdPost, http.StatusCreated)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting post")
		writeError(w, "Post not found", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
