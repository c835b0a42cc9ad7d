package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
)

// historyRepository is the PostgreSQL-backed implementation of
// [HistoryRepository]. Queries are built with squirrel in sql_queries.go.
// storedNamesBatch caps the names bound into a single IN list.
const storedNamesBatch = 1000

type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistory(row rowScanner) (models.History, error) {
	var (
		h         models.History
		chartType string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.FileName, &h.StoredName, &h.UploadDate,
		&h.Rows, &h.FileSize, &h.XAxis, &h.YAxis, &chartType)
	h.ChartType = models.ChartType(chartType)
	return h, err
}

func (r *historyRepository) CreateHistory(ctx context.Context, history models.History) (models.History, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertHistoryQuery(history)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.CreateHistory").Msg("failed to create query")
		return models.History{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&history.ID, &history.UploadDate); err != nil {
		log.Err(err).
			Str("func", "*historyRepository.CreateHistory").
			Int64("user_id", history.UserID).
			Str("file_name", history.FileName).
			Msg("failed to insert history")
		if isForeignKeyViolation(err) {
			return models.History{}, ErrUserNotFound
		}
		return models.History{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return history, nil
}

func (r *historyRepository) GetHistory(ctx context.Context, historyID, userID int64) (models.History, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHistoryQuery(historyID, userID)
	if err != nil {
		return models.History{}, err
	}

	history, err := scanHistory(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.History{}, ErrHistoryNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*historyRepository.GetHistory").
			Int64("history_id", historyID).
			Msg("failed to get history")
		return models.History{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return history, nil
}

func (r *historyRepository) ListHistories(ctx context.Context, userID int64) ([]models.History, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHistoriesQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*historyRepository.ListHistories").
			Int64("user_id", userID).
			Msg("failed to execute query for listing histories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	histories := make([]models.History, 0, 16)
	for rows.Next() {
		history, scanErr := scanHistory(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*historyRepository.ListHistories").
				Int64("user_id", userID).
				Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		histories = append(histories, history)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*historyRepository.ListHistories").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return histories, nil
}

func (r *historyRepository) DeleteHistory(ctx context.Context, historyID, userID int64) (models.History, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteHistoryQuery(historyID, userID)
	if err != nil {
		return models.History{}, err
	}

	history, err := scanHistory(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.History{}, ErrHistoryNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*historyRepository.DeleteHistory").
			Int64("history_id", historyID).
			Int64("user_id", userID).
			Msg("failed to delete history")
		return models.History{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return history, nil
}

func (r *historyRepository) ReferencedStoredNames(ctx context.Context, names []string) (map[string]struct{}, error) {
	referenced := make(map[string]struct{}, len(names))

	// one bind parameter per name, postgres allows at most 65535 per statement
	for batch := range slices.Chunk(names, storedNamesBatch) {
		if err := r.collectStoredNames(ctx, batch, referenced); err != nil {
			return nil, err
		}
	}

	return referenced, nil
}

func (r *historyRepository) collectStoredNames(ctx context.Context, names []string, referenced map[string]struct{}) error {
	log := logger.FromContext(ctx)

	query, args, err := buildReferencedStoredNamesQuery(names)
	if err != nil {
		return err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ReferencedStoredNames").Int("batch", len(names)).Msg("failed to query stored names")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		referenced[name] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
