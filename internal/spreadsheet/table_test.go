package spreadsheet

import (
	"reflect"
	"testing"

	"github.com/MKhiriev/sheetcharts/models"
)

func TestBuildTable(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		wantColumns []string
		wantRows    []models.Row
	}{
		{
			name:        "empty sheet",
			rows:        nil,
			wantColumns: []string{},
			wantRows:    []models.Row{},
		},
		{
			name:        "header only",
			rows:        [][]string{{"a", "b"}},
			wantColumns: []string{"a", "b"},
			wantRows:    []models.Row{},
		},
		{
			name:        "blank header cells",
			rows:        [][]string{{"", "b", " "}, {"1", "2", "3", "4"}},
			wantColumns: []string{"__EMPTY", "b", "__EMPTY_1", "__EMPTY_2"},
			wantRows:    []models.Row{{"__EMPTY": "1", "b": "2", "__EMPTY_1": "3", "__EMPTY_2": "4"}},
		},
		{
			name:        "duplicate headers",
			rows:        [][]string{{"v", "v", "v_1", "v"}, {"1", "2", "3", "4"}},
			wantColumns: []string{"v", "v_1", "v_1_1", "v_2"},
			wantRows:    []models.Row{{"v": "1", "v_1": "2", "v_1_1": "3", "v_2": "4"}},
		},
		{
			name:        "leading and inner blank rows",
			rows:        [][]string{{}, {"", " "}, {"k", "v"}, {"a"}, {"", ""}, {"b", "2"}},
			wantColumns: []string{"k", "v"},
			wantRows:    []models.Row{{"k": "a", "v": ""}, {"k": "b", "v": "2"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildTable(tt.rows)
			if !reflect.DeepEqual(got.Columns, tt.wantColumns) {
				t.Errorf("columns = %v, want %v", got.Columns, tt.wantColumns)
			}
			if !reflect.DeepEqual(got.Rows, tt.wantRows) {
				t.Errorf("rows = %v, want %v", got.Rows, tt.wantRows)
			}
		})
	}
}
