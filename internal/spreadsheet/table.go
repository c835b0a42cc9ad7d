package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/sheetcharts/models"
)

const emptyHeader = "__EMPTY"

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// buildTable converts raw sheet rows into a header plus keyed data rows.
func buildTable(rows [][]string) models.Table {
	start := 0
	for start < len(rows) && isBlank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return models.Table{Columns: []string{}, Rows: []models.Row{}}
	}

	width := 0
	for _, r := range rows[start:] {
		width = max(width, len(r))
	}

	columns := headerNames(rows[start], width)

	data := make([]models.Row, 0, len(rows)-start-1)
	for _, cells := range rows[start+1:] {
		if isBlank(cells) {
			continue
		}

		row := make(models.Row, width)
		for i, col := range columns {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		data = append(data, row)
	}

	return models.Table{Columns: columns, Rows: data}
}

// headerNames names width columns from the header cells, filling blanks and
// disambiguating repeats.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]struct{}, width)
	counts := make(map[string]int, width)

	for i := range width {
		base := emptyHeader
		if i < len(header) && strings.TrimSpace(header[i]) != "" {
			base = header[i]
		}

		name := base
		for {
			if _, taken := used[name]; !taken {
				break
			}
			counts[base]++
			name = base + "_" + strconv.Itoa(counts[base])
		}

		used[name] = struct{}{}
		names[i] = name
	}

	return names
}
