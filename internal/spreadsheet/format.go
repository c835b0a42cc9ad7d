package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a supported workbook container.
type Format string

const (
	FormatXLSX Format = ".xlsx"
	FormatXLS  Format = ".xls"
)

// FormatOf returns the workbook format implied by the file name extension.
// The comparison is case-insensitive.
func FormatOf(fileName string) (Format, error) {
	switch Format(strings.ToLower(filepath.Ext(fileName))) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatXLS:
		return FormatXLS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, fileName)
	}
}

// ValidateExtension reports whether fileName names a spreadsheet.
func ValidateExtension(fileName string) error {
	_, err := FormatOf(fileName)
	return err
}

// ContentType returns the MIME type served for downloads of this format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatXLS:
		return "application/vnd.ms-excel"
	default:
		return "application/octet-stream"
	}
}
