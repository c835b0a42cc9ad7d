package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/models"
)

// storedNamer generates the on-disk name of an upload.
type storedNamer interface {
	StoredName(originalName string) string
}

type uploadService struct {
	files     store.FileStorage
	histories store.HistoryRepository
	names     storedNamer

	logger *logger.Logger
}

func NewUploadService(files store.FileStorage, histories store.HistoryRepository, names storedNamer, logger *logger.Logger) UploadService {
	return &uploadService{
		files:     files,
		histories: histories,
		names:     names,
		logger:    logger,
	}
}

// Upload stores and parses one spreadsheet and records it. Nothing is
// written when the extension or chart type is rejected. The stored file is
// removed again when parsing or recording fails.
func (u *uploadService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	fileName := filepath.Base(req.FileName)
	if err := spreadsheet.ValidateExtension(fileName); err != nil {
		log.Warn().Str("func", "*uploadService.Upload").Str("file_name", req.FileName).Msg("rejected file type")
		return models.UploadResult{}, err
	}
	if req.Axes.ChartType != "" && !req.Axes.ChartType.Valid() {
		return models.UploadResult{}, ErrValidationChartType
	}
	if req.Content == nil {
		return models.UploadResult{}, ErrInvalidDataProvided
	}

	storedName := u.names.StoredName(fileName)
	size, err := u.files.Save(ctx, storedName, req.Content)
	if err != nil {
		log.Err(err).Str("func", "*uploadService.Upload").Str("stored_name", storedName).Msg("error storing upload")
		return models.UploadResult{}, fmt.Errorf("error storing upload: %w", err)
	}

	table, err := u.parseStored(ctx, storedName, fileName)
	if err != nil {
		log.Err(err).Str("func", "*uploadService.Upload").Str("stored_name", storedName).Msg("error parsing upload")
		u.discard(ctx, storedName)
		return models.UploadResult{}, err
	}

	history, err := u.histories.CreateHistory(ctx, models.History{
		UserID:     req.UserID,
		FileName:   fileName,
		StoredName: storedName,
		Rows:       table.Len(),
		FileSize:   size,
		XAxis:      req.Axes.XAxis,
		YAxis:      req.Axes.YAxis,
		ChartType:  req.Axes.ChartType,
	})
	if err != nil {
		log.Err(err).Str("func", "*uploadService.Upload").Int64("user_id", req.UserID).Msg("error recording upload")
		u.discard(ctx, storedName)
		return models.UploadResult{}, fmt.Errorf("error recording upload: %w", err)
	}

	log.Info().
		Int64("user_id", req.UserID).
		Int64("history_id", history.ID).
		Int("rows", history.Rows).
		Int64("size", size).
		Msg("spreadsheet uploaded")

	return models.UploadResult{History: history, Table: table}, nil
}

func (u *uploadService) parseStored(ctx context.Context, storedName, fileName string) (models.Table, error) {
	f, err := u.files.Open(ctx, storedName)
	if err != nil {
		return models.Table{}, fmt.Errorf("error opening stored file: %w", err)
	}
	defer f.Close()

	table, err := spreadsheet.Parse(f, fileName)
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: %w", ErrParsingSpreadsheet, err)
	}
	return table, nil
}

func (u *uploadService) discard(ctx context.Context, storedName string) {
	if err := u.files.Remove(ctx, storedName); err != nil && !errors.Is(err, store.ErrFileNotFound) {
		logger.FromContext(ctx).Err(err).Str("stored_name", storedName).Msg("error removing stored file")
	}
}

// Download returns the History record and an open handle on its stored file.
// The caller closes the handle.
func (u *uploadService) Download(ctx context.Context, historyID, userID int64) (models.History, io.ReadSeekCloser, error) {
	history, err := u.histories.GetHistory(ctx, historyID, userID)
	if err != nil {
		return models.History{}, nil, err
	}
	if !history.HasStoredFile() {
		return models.History{}, nil, ErrNoStoredFile
	}

	f, err := u.files.Open(ctx, history.StoredName)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return models.History{}, nil, ErrNoStoredFile
		}
		return models.History{}, nil, err
	}

	return history, f, nil
}

// loadTable parses the stored file behind history.
func loadTable(ctx context.Context, files store.FileStorage, history models.History) (models.Table, error) {
	if !history.HasStoredFile() {
		return models.Table{}, ErrNoStoredFile
	}

	f, err := files.Open(ctx, history.StoredName)
	if err != nil {
		if errors.Is(err, store.ErrFileNotFound) {
			return models.Table{}, ErrNoStoredFile
		}
		return models.Table{}, err
	}
	defer f.Close()

	table, err := spreadsheet.Parse(f, history.StoredName)
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: %w", ErrParsingSpreadsheet, err)
	}
	return table, nil
}
