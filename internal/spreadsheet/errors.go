package spreadsheet

import "errors"

var (
	ErrUnsupportedFileType = errors.New("only .xls and .xlsx files are allowed")
	ErrNoSheets            = errors.New("workbook has no sheets")
	ErrParse               = errors.New("error parsing spreadsheet")
)
