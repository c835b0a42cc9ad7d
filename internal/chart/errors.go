package chart

import "errors"

var (
	ErrColumnNotFound       = errors.New("column not found")
	ErrEmptyDataset         = errors.New("dataset has no rows")
	ErrNoPositiveValues     = errors.New("chart needs at least one positive value")
	ErrUnsupportedChartType = errors.New("unsupported chart type")
	ErrUnsupportedFormat    = errors.New("unsupported export format")
	ErrRender               = errors.New("error rendering chart")
)
