package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

// sqlPostRepository is the SQLite-backed implementation of [PostRepository].
type sqlPostRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewSQLPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating sql post repository")
	return &sqlPostRepository{
		db:     db,
		logger: logger,
	}
}

var postColumns = []string{"id", "title", "content", "user_id", "author", "created_at"}

// ListPosts returns posts in ascending id order, optionally filtered by
// owning user and paginated with skip/limit.
func (r *sqlPostRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	qb := squirrel.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("id ASC")

	if filter.UserID != 0 {
		qb = qb.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.Skip > 0 {
		qb = qb.Offset(uint64(filter.Skip))
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlPostRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlPostRepository.ListPosts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err = rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.Author, &post.CreatedAt); err != nil {
			log.Err(err).Str("func", "*sqlPostRepository.ListPosts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return posts, nil
}

// GetPost returns the post with the given id or [ErrPostNotFound].
func (r *sqlPostRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlPostRepository.GetPost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&post.ID, &post.Title, &post.Content, &post.UserID, &post.Author, &post.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*sqlPostRepository.GetPost").Msg("error scanning row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// CreatePost persists a new post record and returns it with the
// server-assigned ID and CreatedAt. The owning user must have been resolved
// by the caller.
func (r *sqlPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.CreatedAt = time.Now().UTC()

	query, args, err := squirrel.Insert(models.Post{}.TableName()).
		Columns("title", "content", "user_id", "author", "created_at").
		Values(post.Title, post.Content, post.UserID, post.Author, post.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlPostRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlPostRepository.CreatePost").Msg("error executing query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	post.ID, err = result.LastInsertId()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// DeletePost removes the post with the given id or returns
// [ErrPostNotFound].
func (r *sqlPostRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.Delete(models.Post{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlPostRepository.DeletePost").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlPostRepository.DeletePost").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
