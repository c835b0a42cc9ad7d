package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/sheetcharts/internal/adapter"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/models"
)

type clientWorkspaceService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientWorkspaceService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientWorkspaceService {
	return &clientWorkspaceService{adapter: serverAdapter, logger: logger}
}

func (w *clientWorkspaceService) Upload(ctx context.Context, session models.ClientSession, path string, axes models.Axes) (models.UploadResponse, error) {
	fileName := filepath.Base(path)
	if err := spreadsheet.ValidateExtension(fileName); err != nil {
		return models.UploadResponse{}, err
	}
	if axes.ChartType != "" && !axes.ChartType.Valid() {
		return models.UploadResponse{}, ErrValidationChartType
	}

	if err := useSession(w.adapter, session); err != nil {
		return models.UploadResponse{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	uploaded, err := w.adapter.Upload(ctx, fileName, f, axes)
	if err != nil {
		return models.UploadResponse{}, mapAdapterError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "clientWorkspaceService.Upload").
		Int64("history_id", uploaded.File.ID).
		Int("rows", uploaded.File.Rows).
		Msg("file uploaded")

	return uploaded, nil
}

func (w *clientWorkspaceService) ListHistory(ctx context.Context, session models.ClientSession) ([]models.History, error) {
	if err := useSession(w.adapter, session); err != nil {
		return nil, err
	}

	list, err := w.adapter.ListHistory(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (w *clientWorkspaceService) DeleteHistory(ctx context.Context, session models.ClientSession, historyID int64) error {
	if err := useSession(w.adapter, session); err != nil {
		return err
	}
	return mapAdapterError(w.adapter.DeleteHistory(ctx, historyID))
}

func (w *clientWorkspaceService) DownloadFile(ctx context.Context, session models.ClientSession, historyID int64, dir string) (string, error) {
	if err := useSession(w.adapter, session); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".sheetcharts-download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	name, err := w.adapter.DownloadFile(ctx, historyID, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return "", mapAdapterError(err)
	}

	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "history-" + strconv.FormatInt(historyID, 10)
	}

	dst := filepath.Join(dir, name)
	if err = os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("move download into place: %w", err)
	}

	return dst, nil
}

func (w *clientWorkspaceService) Dataset(ctx context.Context, session models.ClientSession, historyID int64, xAxis, yAxis string) (models.DatasetResponse, error) {
	if xAxis == "" || yAxis == "" {
		return models.DatasetResponse{}, ErrValidationNoAxes
	}
	if err := useSession(w.adapter, session); err != nil {
		return models.DatasetResponse{}, err
	}

	ds, err := w.adapter.Dataset(ctx, historyID, xAxis, yAxis)
	if err != nil {
		return models.DatasetResponse{}, mapAdapterError(err)
	}
	return ds, nil
}

func (w *clientWorkspaceService) SaveAnalysis(ctx context.Context, session models.ClientSession, req models.SaveAnalysisRequest) (models.Analysis, error) {
	if req.HistoryID.ID == 0 {
		return models.Analysis{}, ErrValidationNoHistoryID
	}
	if err := useSession(w.adapter, session); err != nil {
		return models.Analysis{}, err
	}

	created, err := w.adapter.CreateAnalysis(ctx, req)
	if err != nil {
		return models.Analysis{}, mapAdapterError(err)
	}
	return created, nil
}

func (w *clientWorkspaceService) ListAnalyses(ctx context.Context, session models.ClientSession) ([]models.Analysis, error) {
	if err := useSession(w.adapter, session); err != nil {
		return nil, err
	}

	list, err := w.adapter.ListAnalyses(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (w *clientWorkspaceService) RenameAnalysis(ctx context.Context, session models.ClientSession, analysisID int64, name string) (models.Analysis, error) {
	if err := useSession(w.adapter, session); err != nil {
		return models.Analysis{}, err
	}

	renamed, err := w.adapter.RenameAnalysis(ctx, analysisID, name)
	if err != nil {
		return models.Analysis{}, mapAdapterError(err)
	}
	return renamed, nil
}

func (w *clientWorkspaceService) DeleteAnalysis(ctx context.Context, session models.ClientSession, analysisID int64) error {
	if err := useSession(w.adapter, session); err != nil {
		return err
	}
	return mapAdapterError(w.adapter.DeleteAnalysis(ctx, analysisID))
}

func (w *clientWorkspaceService) ExportAnalysis(ctx context.Context, session models.ClientSession, analysisID int64, format models.ExportFormat) (models.Export, error) {
	if !format.Valid() {
		return models.Export{}, ErrValidationExportFormat
	}
	if err := useSession(w.adapter, session); err != nil {
		return models.Export{}, err
	}

	export, err := w.adapter.ExportAnalysis(ctx, analysisID, format)
	if err != nil {
		return models.Export{}, mapAdapterError(err)
	}
	if export.FileName == "" {
		export.FileName = fmt.Sprintf("analysis-%d.%s", analysisID, format)
	}
	return export, nil
}
