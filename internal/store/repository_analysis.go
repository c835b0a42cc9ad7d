package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
)

// analysisRepository is the PostgreSQL-backed implementation of
// [AnalysisRepository].
type analysisRepository struct {
	*DB
	logger *logger.Logger
}

func NewAnalysisRepository(db *DB, logger *logger.Logger) AnalysisRepository {
	return &analysisRepository{
		DB:     db,
		logger: logger,
	}
}

// scanAnalysis reads a row produced by selectAnalyses. The joined history
// columns are NULL when the referenced history is gone.
func scanAnalysis(row rowScanner) (models.Analysis, error) {
	var (
		a          models.Analysis
		chartType  string
		fileName   sql.NullString
		uploadDate sql.NullTime
	)
	err := row.Scan(&a.ID, &a.UserID, &a.HistoryID.ID, &a.Name, &a.XAxis, &a.YAxis,
		&chartType, &a.CreatedAt, &fileName, &uploadDate)
	if err != nil {
		return models.Analysis{}, err
	}

	a.ChartType = models.ChartType(chartType)
	if uploadDate.Valid {
		date := uploadDate.Time
		a.HistoryID.FileName = fileName.String
		a.HistoryID.UploadDate = &date
	}

	return a, nil
}

func (r *analysisRepository) CreateAnalysis(ctx context.Context, analysis models.Analysis) (models.Analysis, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAnalysisQuery(analysis)
	if err != nil {
		log.Err(err).Str("func", "*analysisRepository.CreateAnalysis").Msg("failed to create query")
		return models.Analysis{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&analysis.ID, &analysis.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*analysisRepository.CreateAnalysis").
			Int64("user_id", analysis.UserID).
			Int64("history_id", analysis.HistoryID.ID).
			Msg("failed to insert analysis")
		if isForeignKeyViolation(err) {
			return models.Analysis{}, ErrUserNotFound
		}
		return models.Analysis{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return analysis, nil
}

func (r *analysisRepository) GetAnalysis(ctx context.Context, analysisID, userID int64) (models.Analysis, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAnalysisQuery(analysisID, userID)
	if err != nil {
		return models.Analysis{}, err
	}

	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Analysis{}, ErrAnalysisNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*analysisRepository.GetAnalysis").
			Int64("analysis_id", analysisID).
			Msg("failed to get analysis")
		return models.Analysis{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return analysis, nil
}

func (r *analysisRepository) ListAnalyses(ctx context.Context, userID int64) ([]models.Analysis, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAnalysesQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*analysisRepository.ListAnalyses").
			Int64("user_id", userID).
			Msg("failed to execute query for listing analyses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	analyses := make([]models.Analysis, 0, 16)
	for rows.Next() {
		analysis, scanErr := scanAnalysis(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*analysisRepository.ListAnalyses").
				Int64("user_id", userID).
				Msg("failed to scan analysis row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		analyses = append(analyses, analysis)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return analyses, nil
}

func (r *analysisRepository) RenameAnalysis(ctx context.Context, analysisID, userID int64, name string) (models.Analysis, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRenameAnalysisQuery(analysisID, userID, name)
	if err != nil {
		return models.Analysis{}, err
	}

	var (
		analysis  models.Analysis
		chartType string
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&analysis.ID, &analysis.UserID, &analysis.HistoryID.ID,
		&analysis.Name, &analysis.XAxis, &analysis.YAxis, &chartType, &analysis.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Analysis{}, ErrAnalysisNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*analysisRepository.RenameAnalysis").
			Int64("analysis_id", analysisID).
			Msg("failed to rename analysis")
		return models.Analysis{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	analysis.ChartType = models.ChartType(chartType)
	return analysis, nil
}

func (r *analysisRepository) DeleteAnalysis(ctx context.Context, analysisID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAnalysisQuery(analysisID, userID)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*analysisRepository.DeleteAnalysis").
			Int64("analysis_id", analysisID).
			Msg("failed to delete analysis")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAnalysisNotFound
	}

	return nil
}
