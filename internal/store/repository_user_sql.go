package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/models"
)

// sqlUserRepository is the SQLite-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sqlUserRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewSQLUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating sql user repository")
	return &sqlUserRepository{
		db:     db,
		logger: logger,
	}
}

var userColumns = []string{"id", "name", "email", "age", "created_at"}

// ListUsers returns users in ascending id order, optionally filtered by a
// case-insensitive name substring and paginated with skip/limit.
func (r *sqlUserRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	qb := squirrel.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC")

	if filter.Search != "" {
		qb = qb.Where(squirrel.Like{"LOWER(name)": "%" + strings.ToLower(filter.Search) + "%"})
	}
	if filter.Skip > 0 {
		qb = qb.Offset(uint64(filter.Skip))
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Name, &user.Email, &user.Age, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return users, nil
}

// GetUser returns the user with the given id or [ErrUserNotFound].
func (r *sqlUserRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.GetUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&user.ID, &user.Name, &user.Email, &user.Age, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*sqlUserRepository.GetUser").Msg("error scanning row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID and CreatedAt.
//
// Error handling:
//   - SQLite unique constraint violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as [ErrExecutingQuery].
func (r *sqlUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = time.Now().UTC()

	query, args, err := squirrel.Insert(models.User{}.TableName()).
		Columns("name", "email", "age", "created_at").
		Values(user.Name, user.Email, user.Age, user.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*sqlUserRepository.CreateUser").Msg("error executing query")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.ID, err = result.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// DeleteUser removes the user with the given id or returns
// [ErrUserNotFound]. AUTOINCREMENT guarantees the id is never reassigned.
func (r *sqlUserRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.Delete(models.User{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.DeleteUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.DeleteUser").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
