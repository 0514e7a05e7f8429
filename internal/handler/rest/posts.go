package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

func (h *Handler) listPosts(c *gin.Context) {
	log := logger.FromRequest(c.Request)

	filter := models.PostFilter{
		UserID: int64(queryInt(c, "user_id")),
		Skip:   queryInt(c, "skip"),
		Limit:  queryInt(c, "limit"),
	}

	posts, err := h.services.PostService.ListPosts(c.Request.Context(), filter)
	if err != nil {
		log.Err(err).Msg("error listing posts")
		c.JSON(statusFromError(err), models.ErrorResponse{Error: "error listing posts"})
		return
	}

	c.JSON(http.StatusOK, models.PostsResponse{Posts: posts, Count: len(posts)})
}

func (h *Handler) getPost(c *gin.Context) {
	log := logger.FromRequest(c.Request)

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	post, err := h.services.PostService.GetPost(c.Request.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("post not found")
		c.JSON(statusFromError(err), models.ErrorResponse{Error: "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// createPost binds and validates declaratively; the owning user is resolved
// by the service, so an unknown user_id comes back as 404, not 400.
func (h *Handler) createPost(c *gin.Context) {
	log := logger.FromRequest(c.Request)

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("request body failed validation")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	createdPost, err := h.services.PostService.CreatePost(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("user_id", req.UserID).Msg("post owner not found")
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post creation")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
			return
		}
	}

	log.Debug().Int64("id", createdPost.ID).Str("author", createdPost.Author).Msg("post created")
	c.JSON(http.StatusCreated, createdPost)
}

func (h *Handler) deletePost(c *gin.Context) {
	log := logger.FromRequest(c.Request)

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	if err = h.services.PostService.DeletePost(c.Request.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting post")
		c.JSON(statusFromError(err), models.ErrorResponse{Error: "Post not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
