// Package chart derives labeled datasets from parsed sheets and renders them
// as PNG images or single-page PDF documents.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/sheetcharts/models"
)

// BuildDataset pairs the x column (as labels) with the y column (as numbers)
// of every row in table. Non-numeric y cells become 0; no row is dropped.
func BuildDataset(table models.Table, xAxis, yAxis string) (models.Dataset, error) {
	for _, col := range []string{xAxis, yAxis} {
		if !table.HasColumn(col) {
			return models.Dataset{}, fmt.Errorf("%w: %q", ErrColumnNotFound, col)
		}
	}

	ds := models.Dataset{
		Label:  DatasetLabel(xAxis, yAxis),
		Labels: make([]string, 0, table.Len()),
		Values: make([]float64, 0, table.Len()),
	}
	for _, row := range table.Rows {
		ds.Labels = append(ds.Labels, row[xAxis])
		ds.Values = append(ds.Values, Coerce(row[yAxis]))
	}

	return ds, nil
}

// DatasetLabel is the legend caption of a y-versus-x series.
func DatasetLabel(xAxis, yAxis string) string {
	return yAxis + " vs " + xAxis
}

// Coerce converts a cell to a number. Anything that is not a finite decimal
// number yields 0.
func Coerce(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
