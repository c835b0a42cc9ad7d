package service

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// salesWorkbook builds an .xlsx with a Month/Revenue header and n data rows.
func salesWorkbook(t *testing.T, n int) []byte {
	t.Helper()

	rows := make([][]any, 0, n+1)
	rows = append(rows, []any{"Month", "Revenue"})
	for i := 1; i <= n; i++ {
		rows = append(rows, []any{fmt.Sprintf("M%03d", i), i * 10})
	}
	return workbook(t, rows...)
}

func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.Clone(buf.Bytes())
}

type fixedNamer string

func (n fixedNamer) StoredName(string) string {
	return string(n)
}
