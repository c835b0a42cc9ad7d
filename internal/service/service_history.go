package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/sheetcharts/internal/chart"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/models"
)

type historyService struct {
	histories store.HistoryRepository
	files     store.FileStorage

	logger *logger.Logger
}

func NewHistoryService(histories store.HistoryRepository, files store.FileStorage, logger *logger.Logger) HistoryService {
	return &historyService{
		histories: histories,
		files:     files,
		logger:    logger,
	}
}

// Save records metadata for a file that was not uploaded through this
// server. A userId in the body must match the caller.
func (h *historyService) Save(ctx context.Context, session models.Session, req models.SaveHistoryRequest) (models.History, error) {
	log := logger.FromContext(ctx)

	if req.UserID != nil && *req.UserID != session.UserID {
		log.Warn().
			Str("func", "*historyService.Save").
			Int64("caller_id", session.UserID).
			Int64("user_id", *req.UserID).
			Msg("attempt to save history for another user")
		return models.History{}, ErrUnauthorizedAccessToDifferentUserData
	}

	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		return models.History{}, ErrValidationNoFileName
	}
	if req.ChartType != "" && !req.ChartType.Valid() {
		return models.History{}, ErrValidationChartType
	}

	history, err := h.histories.CreateHistory(ctx, models.History{
		UserID:    session.UserID,
		FileName:  fileName,
		XAxis:     req.XAxis,
		YAxis:     req.YAxis,
		ChartType: req.ChartType,
	})
	if err != nil {
		return models.History{}, fmt.Errorf("error saving history: %w", err)
	}

	return history, nil
}

func (h *historyService) List(ctx context.Context, session models.Session, ownerID int64) ([]models.History, error) {
	if ownerID != session.UserID && !session.IsAdmin() {
		logger.FromContext(ctx).Warn().
			Str("func", "*historyService.List").
			Int64("caller_id", session.UserID).
			Int64("owner_id", ownerID).
			Msg("attempt to list history of another user")
		return nil, ErrUnauthorizedAccessToDifferentUserData
	}

	return h.histories.ListHistories(ctx, ownerID)
}

// Delete removes the caller's record, then its stored file. A file that
// cannot be removed is left to the orphan sweeper.
func (h *historyService) Delete(ctx context.Context, historyID, userID int64) error {
	log := logger.FromContext(ctx)

	history, err := h.histories.DeleteHistory(ctx, historyID, userID)
	if err != nil {
		return err
	}

	if history.HasStoredFile() {
		if err = h.files.Remove(ctx, history.StoredName); err != nil && !errors.Is(err, store.ErrFileNotFound) {
			log.Err(err).
				Str("func", "*historyService.Delete").
				Str("stored_name", history.StoredName).
				Msg("error removing stored file")
		}
	}

	return nil
}

func (h *historyService) Dataset(ctx context.Context, req models.DatasetRequest) (models.DatasetResponse, error) {
	if req.XAxis == "" || req.YAxis == "" {
		return models.DatasetResponse{}, ErrValidationNoAxes
	}

	history, err := h.histories.GetHistory(ctx, req.HistoryID, req.UserID)
	if err != nil {
		return models.DatasetResponse{}, err
	}

	table, err := loadTable(ctx, h.files, history)
	if err != nil {
		return models.DatasetResponse{}, err
	}

	ds, err := chart.BuildDataset(table, req.XAxis, req.YAxis)
	if err != nil {
		return models.DatasetResponse{}, fmt.Errorf("%w: %w", ErrValidationUnknownColumns, err)
	}

	return models.DatasetResponse{Columns: table.Columns, Dataset: ds}, nil
}
