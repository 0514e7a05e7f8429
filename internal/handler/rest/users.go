package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

func (h *Handler) listUsers(c *gin.Context) {
	log := logger.FromRequest(c.Request)

	filter := models.UserFilter{
		Search: c.Query("search"),
		Skip:   queryInt(c, "skip"),
		Limit:  queryInt(c, "limit"),
	}

	users, err := h.services.UserService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		log.Err(err).Msg("error listing users")
		c.JSON(statusFromError(err), models.ErrorResponse{Error: "error listing users"})
		return
	}

	c.JSON(http.StatusOK, models.UsersResponse{Users: users, Count: len(users)})
}

func (h *Handler) getUser(c *gin.Context) {
	log := logger.FromRequest(c.Request)

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.services.UserService.GetUser(c.Request.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user not found")
		c.JSON(statusFromError(err), models.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// createUser leaves validation to the binding tags on
// models.CreateUserRequest; a payload that fails them never reaches the
// service. Compare with the per-field checks in the basic package.
func (h *Handler) createUser(c *gin.Context) {
	log := logger.FromRequest(c.Request)

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("request body failed validation")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	createdUser, err := h.services.UserService.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", req.Email).Msg("email already exists")
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Email already exists"})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
			return
		}
	}

	log.Debug().Int64("id", createdUser.ID).Msg("user created")
	c.JSON(http.StatusCreated, createdUser)
}

func (h *Handler) deleteUser(c *gin.Context) {
	log := logger.FromRequest(c.Request)

	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err = h.services.UserService.DeleteUser(c.Request.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting user")
		c.JSON(statusFromError(err), models.ErrorResponse{Error: "User not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// queryInt parses an optional integer query parameter; absent or malformed
// values yield zero, which the service layer replaces with its defaults.
func queryInt(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
