package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mpetrashin/go-web-fundamentals/models"
)

// MemoryStorage is the default, process-local implementation of both
// repositories. All records are lost when the process exits.
//
// Identifiers come from per-entity nextID counters seeded at 1. Reserving
// the id and storing the record happen inside one critical section, and the
// counters only ever grow, so ids stay strictly monotonic and are never
// reused after a deletion.
type MemoryStorage struct {
	mu sync.RWMutex

	nextUserID int64
	users      map[int64]models.User
	userIDs    []int64 // insertion order, kept sorted by construction

	nextPostID int64
	posts      map[int64]models.Post
	postIDs    []int64

	now func() time.Time
}

// NewMemoryStorage constructs an empty in-memory store implementing both
// [UserRepository] and [PostRepository].
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		nextUserID: 1,
		users:      make(map[int64]models.User),
		nextPostID: 1,
		posts:      make(map[int64]models.Post),
		now:        time.Now,
	}
}

// ListUsers implements [UserRepository]. Filtering and pagination run over a
// snapshot taken under the read lock.
func (s *MemoryStorage) ListUsers(_ context.Context, filter models.UserFilter) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.User, 0, len(s.userIDs))
	for _, id := range s.userIDs {
		user := s.users[id]
		if filter.Search != "" && !strings.Contains(strings.ToLower(user.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, user)
	}

	return paginate(matched, filter.Skip, filter.Limit), nil
}

// GetUser implements [UserRepository].
func (s *MemoryStorage) GetUser(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// CreateUser implements [UserRepository]. The uniqueness check, id
// reservation, and insert share one critical section.
func (s *MemoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userIDs {
		if s.users[id].Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = s.now().UTC()

	s.users[user.ID] = user
	s.userIDs = append(s.userIDs, user.ID)

	return user, nil
}

// DeleteUser implements [UserRepository].
func (s *MemoryStorage) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}

	delete(s.users, id)
	s.userIDs = slices.DeleteFunc(s.userIDs, func(existing int64) bool { return existing == id })

	return nil
}

// ListPosts implements [PostRepository].
func (s *MemoryStorage) ListPosts(_ context.Context, filter models.PostFilter) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Post, 0, len(s.postIDs))
	for _, id := range s.postIDs {
		post := s.posts[id]
		if filter.UserID != 0 && post.UserID != filter.UserID {
			continue
		}
		matched = append(matched, post)
	}

	return paginate(matched, filter.Skip, filter.Limit), nil
}

// GetPost implements [PostRepository].
func (s *MemoryStorage) GetPost(_ context.Context, id int64) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	return post, nil
}

// CreatePost implements [PostRepository].
func (s *MemoryStorage) CreatePost(_ context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = s.nextPostID
	s.nextPostID++
	post.CreatedAt = s.now().UTC()

	s.posts[post.ID] = post
	s.postIDs = append(s.postIDs, post.ID)

	return post, nil
}

// DeletePost implements [PostRepository].
func (s *MemoryStorage) DeletePost(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrPostNotFound
	}

	delete(s.posts, id)
	s.postIDs = slices.DeleteFunc(s.postIDs, func(existing int64) bool { return existing == id })

	return nil
}

// paginate applies skip/limit to an already filtered slice. Limit <= 0 means
// no cap; the service layer supplies defaults before reaching the store.
func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}

	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}
