package rest

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) Init() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.withTraceID())
	router.Use(h.withLogging())

	router.GET("/", h.info)

	users := router.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.GET("/:id", h.getUser)
		users.DELETE("/:id", h.deleteUser)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", h.listPosts)
		posts.POST("", h.createPost)
		posts.GET("/:id", h.getPost)
		posts.DELETE("/:id", h.deletePost)
	}

	return router
}
