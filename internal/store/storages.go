package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
)

// Storages groups every server-side repository so it can be handed to the
// service layer as one value.
type Storages struct {
	UserRepository     UserRepository
	HistoryRepository  HistoryRepository
	AnalysisRepository AnalysisRepository
	FileStorage        FileStorage
	HealthChecker      HealthChecker

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and prepares the
// upload directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	files, err := NewUploadFileStorage(cfg.Files.UploadDir, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		HistoryRepository:  NewHistoryRepository(db, logger),
		AnalysisRepository: NewAnalysisRepository(db, logger),
		FileStorage:        files,
		HealthChecker:      db,
		db:                 db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
