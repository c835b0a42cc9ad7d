package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/migrations"
)

// DB is a *sql.DB bound to the migration dialect it was opened with.
type DB struct {
	*sql.DB
	dialect migrations.Dialect
	logger  *logger.Logger
}

// Migrate applies the embedded migrations matching the connection dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}
