package service

import (
	"context"
	"fmt"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

// Pagination defaults applied when a list request leaves them unset.
const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// userService is the concrete implementation of UserService. It owns input
// validation and pagination policy; storage details stay behind the
// injected UserRepository.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers implements [UserService].
func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	filter = normalizeUserFilter(filter)

	users, err := s.userRepository.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// GetUser implements [UserService].
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateUser implements [UserService].
//
// Name and email are required; everything beyond presence (email format,
// length bounds, age range) is the responsibility of the transport layer,
// which differs between the two API servers.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" {
		log.Error().Any("request", req).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// DeleteUser implements [UserService].
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

func normalizeUserFilter(filter models.UserFilter) models.UserFilter {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	return filter
}
