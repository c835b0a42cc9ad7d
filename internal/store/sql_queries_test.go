// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sheetcharts/models"
)

func Test_buildListHistoriesQuery(t *testing.T) {
	query, args, err := buildListHistoriesQuery(42)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, user_id, file_name, stored_name, upload_date, row_count, file_size, x_axis, y_axis, chart_type "+
		"FROM histories WHERE user_id = $1 ORDER BY upload_date DESC, id DESC", query)
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildSelectHistoryQuery_ScopedToOwner(t *testing.T) {
	query, args, err := buildSelectHistoryQuery(7, 42)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE id = $1 AND user_id = $2")
	assert.Equal(t, []any{int64(7), int64(42)}, args)
}

func Test_buildInsertHistoryQuery(t *testing.T) {
	query, args, err := buildInsertHistoryQuery(models.History{
		UserID: 1, FileName: "sales.xlsx", StoredName: "1-a.xlsx", Rows: 120, FileSize: 2048,
		XAxis: "Month", YAxis: "Revenue", ChartType: models.ChartLine,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO histories (user_id,file_name,stored_name,row_count,file_size,x_axis,y_axis,chart_type)")
	assert.Contains(t, query, "RETURNING id, upload_date")
	assert.Equal(t, []any{int64(1), "sales.xlsx", "1-a.xlsx", 120, int64(2048), "Month", "Revenue", "line"}, args)
}

func Test_buildDeleteHistoryQuery_ReturnsRecord(t *testing.T) {
	query, args, err := buildDeleteHistoryQuery(3, 9)
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM histories WHERE id = $1 AND user_id = $2 RETURNING id, user_id, file_name, stored_name")
	assert.Equal(t, []any{int64(3), int64(9)}, args)
}

func Test_buildReferencedStoredNamesQuery(t *testing.T) {
	query, args, err := buildReferencedStoredNamesQuery([]string{"a.xlsx", "b.xls"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT DISTINCT stored_name FROM histories WHERE stored_name IN ($1,$2)", query)
	assert.Equal(t, []any{"a.xlsx", "b.xls"}, args)
}

func Test_buildListAnalysesQuery_JoinsHistories(t *testing.T) {
	query, args, err := buildListAnalysesQuery(5)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM analyses a LEFT JOIN histories h ON h.id = a.history_id AND h.user_id = a.user_id")
	assert.Contains(t, query, "WHERE a.user_id = $1 ORDER BY a.created_at DESC, a.id DESC")
	assert.Contains(t, query, "h.file_name, h.upload_date")
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_buildRenameAnalysisQuery(t *testing.T) {
	query, args, err := buildRenameAnalysisQuery(4, 5, "Revenue by month")
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE analyses SET name = $1 WHERE id = $2 AND user_id = $3 RETURNING")
	assert.Equal(t, []any{"Revenue by month", int64(4), int64(5)}, args)
}

func Test_buildDeleteAnalysisQuery(t *testing.T) {
	query, args, err := buildDeleteAnalysisQuery(4, 5)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM analyses WHERE id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{int64(4), int64(5)}, args)
}
