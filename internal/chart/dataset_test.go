package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sheetcharts/models"
)

func salesTable() models.Table {
	return models.Table{
		Columns: []string{"Region", "Revenue"},
		Rows: []models.Row{
			{"Region": "North", "Revenue": "1500"},
			{"Region": "South", "Revenue": "abc"},
			{"Region": "East", "Revenue": " 12.5 "},
			{"Region": "West", "Revenue": ""},
		},
	}
}

func TestBuildDataset(t *testing.T) {
	ds, err := BuildDataset(salesTable(), "Region", "Revenue")
	require.NoError(t, err)

	assert.Equal(t, "Revenue vs Region", ds.Label)
	assert.Equal(t, []string{"North", "South", "East", "West"}, ds.Labels)
	assert.Equal(t, []float64{1500, 0, 12.5, 0}, ds.Values)
	assert.Equal(t, 4, ds.Len())
}

func TestBuildDataset_UnknownColumn(t *testing.T) {
	_, err := BuildDataset(salesTable(), "Region", "Profit")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = BuildDataset(salesTable(), "Country", "Revenue")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestBuildDataset_EmptyTable(t *testing.T) {
	ds, err := BuildDataset(models.Table{Columns: []string{"x", "y"}}, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.NotNil(t, ds.Labels)
	assert.NotNil(t, ds.Values)
}

func TestCoerce(t *testing.T) {
	tests := map[string]float64{
		"42":       42,
		"-3.5":     -3.5,
		"1e3":      1000,
		"  7  ":    7,
		"abc":      0,
		"":         0,
		"12abc":    0,
		"NaN":      0,
		"Infinity": 0,
		"-Inf":     0,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Coerce(in))
		})
	}
}
