package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/MKhiriev/sheetcharts/internal/chart"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/models"
)

type clientPreviewService struct {
	renderer *chart.Renderer
	logger   *logger.Logger
}

func NewClientPreviewService(renderer *chart.Renderer, logger *logger.Logger) ClientPreviewService {
	return &clientPreviewService{renderer: renderer, logger: logger}
}

func (p *clientPreviewService) Open(ctx context.Context, path string) (models.Table, error) {
	if err := spreadsheet.ValidateExtension(filepath.Base(path)); err != nil {
		return models.Table{}, err
	}

	table, err := spreadsheet.ParseFile(path)
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: %w", ErrParsingSpreadsheet, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "clientPreviewService.Open").
		Str("file", path).
		Int("rows", table.Len()).
		Int("columns", len(table.Columns)).
		Msg("spreadsheet parsed")

	return table, nil
}

func (p *clientPreviewService) Dataset(table models.Table, axes models.Axes) (models.Dataset, error) {
	if !axes.Complete() {
		return models.Dataset{}, ErrValidationNoAxes
	}

	ds, err := chart.BuildDataset(table, axes.XAxis, axes.YAxis)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrValidationUnknownColumns, err)
	}
	return ds, nil
}

func (p *clientPreviewService) Render(w io.Writer, format models.ExportFormat, axes models.Axes, dataset models.Dataset) error {
	if !format.Valid() {
		return ErrValidationExportFormat
	}
	kind := axes.ChartType.OrDefault()
	if !kind.Valid() {
		return ErrValidationChartType
	}

	return p.renderer.Render(w, format, kind, dataset.Label, dataset)
}
