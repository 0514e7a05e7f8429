// Package rest serves the users/posts CRUD API on a gin engine. Request
// validation is declarative: the binding tags on the models request types
// replace the hand-written field checks of package basic, so the two
// packages demonstrate both validation styles over the same service layer.
package rest

import (
	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("rest api handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
