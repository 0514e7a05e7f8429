package store

import (
	"github.com/mpetrashin/go-web-fundamentals/internal/config"
	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
)

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages selects the storage backend from cfg.
//
// With an empty DSN both repositories share one [MemoryStorage]: records
// live in process memory and are lost on restart, which is the demo
// default. A non-empty DSN opens (and migrates) a SQLite database instead.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		memory := NewMemoryStorage()
		logger.Info().Msg("using in-memory storage")
		return &Storages{
			UserRepository: memory,
			PostRepository: memory,
		}, nil
	}

	db, err := NewSQLiteDB(cfg.DB.DSN, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewSQLUserRepository(db, logger),
		PostRepository: NewSQLPostRepository(db, logger),
	}, nil
}
