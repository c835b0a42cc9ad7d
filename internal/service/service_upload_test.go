// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/mock"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/models"
)

func newTempFileStorage(t *testing.T) (store.FileStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	files, err := store.NewUploadFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	return files, dir
}

func TestUploadService_RejectsNonSpreadsheetBeforeStoring(t *testing.T) {
	for _, name := range []string{"notes.txt", "report.csv", "archive.xlsx.zip", "noext"} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no EXPECT(): any call on the store fails the test
			files := mock.NewMockFileStorage(ctrl)
			histories := mock.NewMockHistoryRepository(ctrl)

			svc := NewUploadService(files, histories, fixedNamer("x.xlsx"), logger.Nop())

			_, err := svc.Upload(context.Background(), models.UploadRequest{
				UserID:   1,
				FileName: name,
				Content:  strings.NewReader("whatever"),
			})

			assert.ErrorIs(t, err, spreadsheet.ErrUnsupportedFileType)
		})
	}
}

func TestUploadService_RejectsUnknownChartType(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUploadService(mock.NewMockFileStorage(ctrl), mock.NewMockHistoryRepository(ctrl), fixedNamer("x.xlsx"), logger.Nop())

	_, err := svc.Upload(context.Background(), models.UploadRequest{
		FileName: "sales.xlsx",
		Axes:     models.Axes{ChartType: "scatter3d"},
		Content:  strings.NewReader(""),
	})

	assert.ErrorIs(t, err, ErrValidationChartType)
}

func TestUploadService_RecordsParsedRowCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	files, dir := newTempFileStorage(t)
	histories := mock.NewMockHistoryRepository(ctrl)

	content := salesWorkbook(t, 120)

	histories.EXPECT().
		CreateHistory(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, h models.History) (models.History, error) {
			assert.Equal(t, int64(9), h.UserID)
			assert.Equal(t, "sales.xlsx", h.FileName)
			assert.Equal(t, "1700000000000-id.xlsx", h.StoredName)
			assert.Equal(t, 120, h.Rows)
			assert.Equal(t, int64(len(content)), h.FileSize)
			assert.Equal(t, "Month", h.XAxis)
			assert.Equal(t, "Revenue", h.YAxis)
			assert.Equal(t, models.ChartLine, h.ChartType)
			h.ID = 55
			return h, nil
		})

	svc := NewUploadService(files, histories, fixedNamer("1700000000000-id.xlsx"), logger.Nop())

	got, err := svc.Upload(context.Background(), models.UploadRequest{
		UserID:   9,
		FileName: "../../sales.xlsx",
		Axes:     models.Axes{XAxis: "Month", YAxis: "Revenue", ChartType: models.ChartLine},
		Content:  bytes.NewReader(content),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(55), got.History.ID)
	assert.Equal(t, 120, got.Table.Len())
	assert.Equal(t, []string{"Month", "Revenue"}, got.Table.Columns)
	assert.FileExists(t, filepath.Join(dir, "1700000000000-id.xlsx"))
}

func TestUploadService_CorruptFileIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	files, dir := newTempFileStorage(t)
	histories := mock.NewMockHistoryRepository(ctrl)

	svc := NewUploadService(files, histories, fixedNamer("broken.xlsx"), logger.Nop())

	_, err := svc.Upload(context.Background(), models.UploadRequest{
		UserID:   1,
		FileName: "broken.xlsx",
		Content:  strings.NewReader("this is not a zip archive"),
	})

	assert.ErrorIs(t, err, ErrParsingSpreadsheet)
	assert.NoFileExists(t, filepath.Join(dir, "broken.xlsx"))
}

func TestUploadService_RecordFailureDiscardsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	files, dir := newTempFileStorage(t)
	histories := mock.NewMockHistoryRepository(ctrl)

	histories.EXPECT().CreateHistory(gomock.Any(), gomock.Any()).Return(models.History{}, store.ErrUserNotFound)

	svc := NewUploadService(files, histories, fixedNamer("a.xlsx"), logger.Nop())

	_, err := svc.Upload(context.Background(), models.UploadRequest{
		UserID:   404,
		FileName: "sales.xlsx",
		Content:  bytes.NewReader(salesWorkbook(t, 3)),
	})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.NoFileExists(t, filepath.Join(dir, "a.xlsx"))
}

func TestUploadService_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)
	histories := mock.NewMockHistoryRepository(ctrl)
	svc := NewUploadService(files, histories, fixedNamer("unused"), logger.Nop())

	t.Run("streams stored file", func(t *testing.T) {
		histories.EXPECT().GetHistory(gomock.Any(), int64(1), int64(2)).
			Return(models.History{ID: 1, FileName: "sales.xlsx", StoredName: "s.xlsx"}, nil)
		files.EXPECT().Open(gomock.Any(), "s.xlsx").Return(nopSeekCloser{strings.NewReader("bytes")}, nil)

		h, rc, err := svc.Download(context.Background(), 1, 2)
		require.NoError(t, err)
		defer rc.Close()

		body, _ := io.ReadAll(rc)
		assert.Equal(t, "sales.xlsx", h.FileName)
		assert.Equal(t, "bytes", string(body))
	})

	t.Run("metadata only record", func(t *testing.T) {
		histories.EXPECT().GetHistory(gomock.Any(), int64(3), int64(2)).Return(models.History{ID: 3, FileName: "x.xlsx"}, nil)

		_, _, err := svc.Download(context.Background(), 3, 2)
		assert.ErrorIs(t, err, ErrNoStoredFile)
	})

	t.Run("file gone from disk", func(t *testing.T) {
		histories.EXPECT().GetHistory(gomock.Any(), int64(4), int64(2)).Return(models.History{ID: 4, StoredName: "gone.xlsx"}, nil)
		files.EXPECT().Open(gomock.Any(), "gone.xlsx").Return(nil, store.ErrFileNotFound)

		_, _, err := svc.Download(context.Background(), 4, 2)
		assert.ErrorIs(t, err, ErrNoStoredFile)
	})

	t.Run("not the caller's", func(t *testing.T) {
		histories.EXPECT().GetHistory(gomock.Any(), int64(5), int64(2)).Return(models.History{}, store.ErrHistoryNotFound)

		_, _, err := svc.Download(context.Background(), 5, 2)
		assert.True(t, errors.Is(err, store.ErrHistoryNotFound))
	})
}

type nopSeekCloser struct {
	io.ReadSeeker
}

func (nopSeekCloser) Close() error { return nil }
