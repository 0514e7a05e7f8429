package service

import (
	"context"
	"fmt"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

// postService is the concrete implementation of PostService. Besides the
// post repository it holds the user repository, because creating a post
// requires resolving the owning user first.
type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewPostService constructs a PostService wired to the given repositories.
func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListPosts implements [PostService].
func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	filter = normalizePostFilter(filter)

	posts, err := s.postRepository.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

// GetPost implements [PostService].
func (s *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	post, err := s.postRepository.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}

	return post, nil
}

// CreatePost implements [PostService].
//
// The owning user is looked up before anything is stored: when the
// reference cannot be resolved the call fails with store.ErrUserNotFound
// and the post list stays untouched. The user's name is copied into Author
// at this point and is never refreshed afterwards.
func (s *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.Content == "" || req.UserID == 0 {
		log.Error().Any("request", req).Msg("invalid post data provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	owner, err := s.userRepository.GetUser(ctx, req.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("post owner lookup failed")
		return models.Post{}, fmt.Errorf("post owner lookup failed: %w", err)
	}

	post := models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  owner.ID,
		Author:  owner.Name,
	}

	createdPost, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("title", req.Title).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// DeletePost implements [PostService].
func (s *postService) DeletePost(ctx context.Context, id int64) error {
	if err := s.postRepository.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

func normalizePostFilter(filter models.PostFilter) models.PostFilter {
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
