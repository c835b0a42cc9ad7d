package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/sheetcharts/internal/chart"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/models"
)

type analysisService struct {
	analyses  store.AnalysisRepository
	histories store.HistoryRepository
	files     store.FileStorage
	renderer  *chart.Renderer

	logger *logger.Logger
}

func NewAnalysisService(
	analyses store.AnalysisRepository,
	histories store.HistoryRepository,
	files store.FileStorage,
	renderer *chart.Renderer,
	logger *logger.Logger,
) AnalysisService {
	return &analysisService{
		analyses:  analyses,
		histories: histories,
		files:     files,
		renderer:  renderer,
		logger:    logger,
	}
}

// Create saves an analysis against one of the caller's History records.
// An empty chart type means bar; an empty name is derived from the axes.
func (a *analysisService) Create(ctx context.Context, req models.SaveAnalysisRequest) (models.Analysis, error) {
	log := logger.FromContext(ctx)

	if req.HistoryID.ID == 0 {
		log.Warn().Str("func", "*analysisService.Create").Int64("user_id", req.UserID).Msg("historyId missing")
		return models.Analysis{}, ErrValidationNoHistoryID
	}

	chartType := req.ChartType.OrDefault()
	if !chartType.Valid() {
		return models.Analysis{}, ErrValidationChartType
	}

	history, err := a.histories.GetHistory(ctx, req.HistoryID.ID, req.UserID)
	if err != nil {
		return models.Analysis{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = history.FileName
		if req.XAxis != "" && req.YAxis != "" {
			name = chart.DatasetLabel(req.XAxis, req.YAxis)
		}
	}

	analysis, err := a.analyses.CreateAnalysis(ctx, models.Analysis{
		UserID:    req.UserID,
		HistoryID: models.HistoryRef{ID: history.ID},
		Name:      name,
		XAxis:     req.XAxis,
		YAxis:     req.YAxis,
		ChartType: chartType,
	})
	if err != nil {
		return models.Analysis{}, fmt.Errorf("error saving analysis: %w", err)
	}

	uploaded := history.UploadDate
	analysis.HistoryID = models.HistoryRef{ID: history.ID, FileName: history.FileName, UploadDate: &uploaded}

	return analysis, nil
}

func (a *analysisService) List(ctx context.Context, userID int64) ([]models.Analysis, error) {
	return a.analyses.ListAnalyses(ctx, userID)
}

func (a *analysisService) Rename(ctx context.Context, analysisID, userID int64, name string) (models.Analysis, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Analysis{}, ErrValidationNoName
	}

	return a.analyses.RenameAnalysis(ctx, analysisID, userID, name)
}

func (a *analysisService) Delete(ctx context.Context, analysisID, userID int64) error {
	return a.analyses.DeleteAnalysis(ctx, analysisID, userID)
}

// Export renders the saved chart from the upload it references. An analysis
// whose History is gone yields store.ErrHistoryNotFound.
func (a *analysisService) Export(ctx context.Context, req models.ExportRequest) (models.Export, error) {
	log := logger.FromContext(ctx)

	if !req.Format.Valid() {
		return models.Export{}, ErrValidationExportFormat
	}

	analysis, err := a.analyses.GetAnalysis(ctx, req.AnalysisID, req.UserID)
	if err != nil {
		return models.Export{}, err
	}

	history, err := a.histories.GetHistory(ctx, analysis.HistoryID.ID, req.UserID)
	if err != nil {
		return models.Export{}, err
	}

	table, err := loadTable(ctx, a.files, history)
	if err != nil {
		return models.Export{}, err
	}

	ds, err := chart.BuildDataset(table, analysis.XAxis, analysis.YAxis)
	if err != nil {
		return models.Export{}, fmt.Errorf("%w: %w", ErrValidationUnknownColumns, err)
	}

	var buf bytes.Buffer
	if err = a.renderer.Render(&buf, req.Format, analysis.ChartType, analysis.Name, ds); err != nil {
		log.Err(err).
			Str("func", "*analysisService.Export").
			Int64("analysis_id", analysis.ID).
			Str("format", string(req.Format)).
			Msg("error rendering chart")
		return models.Export{}, err
	}

	return models.Export{
		FileName:    exportFileName(analysis.Name, req.Format),
		ContentType: req.Format.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

// exportFileName turns an analysis name into a safe attachment name.
func exportFileName(name string, format models.ExportFormat) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '"' || r < ' ':
			return '_'
		default:
			return r
		}
	}, strings.TrimSpace(name))
	if base == "" {
		base = "chart"
	}
	return base + "." + string(format)
}
