package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite driver registration

	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/migrations"
)

// DB wraps the opened *sql.DB handle used by the SQLite repositories.
type DB struct {
	*sql.DB

	logger *logger.Logger
}

// NewSQLiteDB opens (or creates) the SQLite database at dsn, verifies the
// connection, and applies the embedded goose migrations.
//
// dsn is a file path or ":memory:".
func NewSQLiteDB(dsn string, logger *logger.Logger) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	db := &DB{DB: sqlDB, logger: logger}
	if err = db.Migrate(); err != nil {
		return nil, err
	}

	logger.Info().Str("dsn", dsn).Msg("sqlite storage ready")
	return db, nil
}

// Migrate applies all pending embedded migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
