package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// info serves a JSON description of the API surface.
func (h *Handler) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "REST CRUD API",
		"docs": gin.H{
			"users": "/users",
			"posts": "/posts",
		},
	})
}
