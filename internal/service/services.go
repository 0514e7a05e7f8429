package service

import (
	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
)

// Services bundles the business-logic services injected into the handler
// packages.
type Services struct {
	UserService UserService
	PostService PostService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, logger),
		PostService: NewPostService(storages.PostRepository, storages.UserRepository, logger),
	}
}
