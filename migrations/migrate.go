package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// Dialect selects both the goose dialect and the embedded migration set.
type Dialect string

const (
	// DialectPostgres migrates the server schema through the pgx driver.
	DialectPostgres Dialect = "pgx"
	// DialectSQLite migrates the CLI session schema.
	DialectSQLite Dialect = "sqlite3"
)

var (
	ErrNilDB          = errors.New("db is nil")
	ErrUnknownDialect = errors.New("unknown migration dialect")
)

// goose keeps its base FS and dialect in package globals
var gooseMu sync.Mutex

// Migrate applies every pending migration of the given dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	fsys, dir, err := migrationSet(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationSet(dialect Dialect) (embed.FS, string, error) {
	switch dialect {
	case DialectPostgres:
		return postgresMigrations, "postgres", nil
	case DialectSQLite:
		return sqliteMigrations, "sqlite", nil
	default:
		return embed.FS{}, "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}
