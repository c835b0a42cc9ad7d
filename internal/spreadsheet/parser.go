package spreadsheet

import (
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/sheetcharts/models"
)

// legacy BIFF workbooks are decoded with this charset
const xlsCharset = "utf-8"

// Parse reads the first sheet of the workbook in r. fileName selects the
// decoder and is not opened.
func Parse(r io.ReadSeeker, fileName string) (models.Table, error) {
	format, err := FormatOf(fileName)
	if err != nil {
		return models.Table{}, err
	}

	var rows [][]string
	switch format {
	case FormatXLSX:
		rows, err = readXLSX(r)
	case FormatXLS:
		rows, err = readXLS(r)
	}
	if err != nil {
		return models.Table{}, err
	}

	return buildTable(rows), nil
}

// ParseFile opens path and parses it with [Parse].
func ParseFile(path string) (models.Table, error) {
	if err := ValidateExtension(path); err != nil {
		return models.Table{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return models.Table{}, fmt.Errorf("error opening spreadsheet: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}

func readXLSX(r io.Reader) ([][]string, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	// raw values keep numbers parseable regardless of cell number format
	rows, err := wb.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return rows, nil
}

func readXLS(r io.ReadSeeker) (rows [][]string, err error) {
	// the BIFF decoder panics on some malformed records
	defer func() {
		if rec := recover(); rec != nil {
			rows, err = nil, fmt.Errorf("%w: %v", ErrParse, rec)
		}
	}()

	wb, err := xls.OpenReader(r, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheets
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoSheets
	}

	rows = make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

// sheetRow returns nil for rows the sheet holds no record of; the decoder
// itself dereferences them.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()

	return sheet.Row(i)
}
