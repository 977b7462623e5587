package store

import (
	"database/sql"

	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
