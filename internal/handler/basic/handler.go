// Package basic serves the users/posts CRUD API on a chi router, with
// manual field-presence validation in each create handler. It is the
// counterpart of the declaratively validated package rest: the two expose
// the same operations so their validation styles can be compared.
package basic

import (
	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("basic api handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
