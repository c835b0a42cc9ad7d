package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/sheetcharts/internal/service"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// multipartUpload builds a multipart body with an optional "file" part and
// the given text fields.
func multipartUpload(t *testing.T, fileName string, content []byte, fields map[string]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

type readSeekNopCloser struct {
	io.ReadSeeker
}

func (readSeekNopCloser) Close() error { return nil }

func TestUpload(t *testing.T) {
	h, m := newMockedHandler(t)
	authorization := m.signIn(4, models.RoleUser)

	uploaded := models.History{ID: 31, UserID: 4, FileName: "sales.xlsx", Rows: 2, FileSize: 5, UploadDate: time.Now().UTC()}
	table := models.Table{
		Columns: []string{"Month", "Revenue"},
		Rows: []models.Row{
			{"Month": "Jan", "Revenue": "10"},
			{"Month": "Feb", "Revenue": "20"},
		},
	}

	m.upload.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req models.UploadRequest) (models.UploadResult, error) {
			assert.Equal(t, int64(4), req.UserID)
			assert.Equal(t, "sales.xlsx", req.FileName)
			assert.Equal(t, int64(5), req.Size)
			assert.Equal(t, models.Axes{XAxis: "Month", YAxis: "Revenue", ChartType: models.ChartLine}, req.Axes)
			content, err := io.ReadAll(req.Content)
			require.NoError(t, err)
			assert.Equal(t, "bytes", string(content))
			return models.UploadResult{History: uploaded, Table: table}, nil
		})

	body, contentType := multipartUpload(t, "sales.xlsx", []byte("bytes"), map[string]string{
		"xAxis": "Month", "yAxis": "Revenue", "chartType": "line",
	})
	rr := serve(t, h.Init(), http.MethodPost, "/api/upload", authorization, body, contentType)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decode[models.UploadResponse](t, rr)
	assert.Equal(t, "File uploaded and parsed successfully", resp.Message)
	assert.Equal(t, int64(31), resp.File.ID)
	assert.Equal(t, []string{"Month", "Revenue"}, resp.Columns)
	assert.Equal(t, []map[string]string{
		{"Month": "Jan", "Revenue": "10"},
		{"Month": "Feb", "Revenue": "20"},
	}, resp.Data)
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		content    []byte
		setup      func(m *serviceMocks)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "no file part",
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "no file uploaded",
		},
		{
			name:       "file over the limit",
			fileName:   "big.xlsx",
			content:    bytes.Repeat([]byte("x"), 3<<20),
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "file too large",
		},
		{
			name:     "wrong extension",
			fileName: "notes.txt",
			content:  []byte("hello"),
			setup: func(m *serviceMocks) {
				m.upload.EXPECT().Upload(gomock.Any(), gomock.Any()).
					Return(models.UploadResult{}, spreadsheet.ErrUnsupportedFileType)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Only .xls and .xlsx files are allowed",
		},
		{
			name:     "unparseable workbook",
			fileName: "broken.xlsx",
			content:  []byte("not a zip"),
			setup: func(m *serviceMocks) {
				m.upload.EXPECT().Upload(gomock.Any(), gomock.Any()).
					Return(models.UploadResult{}, service.ErrParsingSpreadsheet)
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "error parsing spreadsheet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			authorization := m.signIn(4, models.RoleUser)
			tt.setup(m)

			body, contentType := multipartUpload(t, tt.fileName, tt.content, map[string]string{"xAxis": "A"})
			rr := serve(t, h.Init(), http.MethodPost, "/api/upload", authorization, body, contentType)

			assertMessage(t, rr, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestUpload_RequiresAuth(t *testing.T) {
	h, _ := newMockedHandler(t)

	body, contentType := multipartUpload(t, "sales.xlsx", []byte("x"), nil)
	rr := serve(t, h.Init(), http.MethodPost, "/api/upload", "", body, contentType)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDownload(t *testing.T) {
	t.Run("streams the original file", func(t *testing.T) {
		h, m := newMockedHandler(t)
		authorization := m.signIn(4, models.RoleUser)
		m.upload.EXPECT().Download(gomock.Any(), int64(31), int64(4)).Return(
			models.History{ID: 31, FileName: "Q1 sales.xlsx"},
			readSeekNopCloser{strings.NewReader("workbook-bytes")},
			nil,
		)

		rr := serve(t, h.Init(), http.MethodGet, "/api/upload/download/31", authorization, nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "workbook-bytes", rr.Body.String())
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Q1 sales.xlsx"`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "14", rr.Header().Get("Content-Length"))
	})

	t.Run("someone else's record", func(t *testing.T) {
		h, m := newMockedHandler(t)
		authorization := m.signIn(4, models.RoleUser)
		m.upload.EXPECT().Download(gomock.Any(), int64(99), int64(4)).Return(models.History{}, nil, store.ErrHistoryNotFound)

		rr := serve(t, h.Init(), http.MethodGet, "/api/upload/download/99", authorization, nil, "")

		assertMessage(t, rr, http.StatusNotFound, "history not found")
	})

	t.Run("bad id", func(t *testing.T) {
		h, m := newMockedHandler(t)
		authorization := m.signIn(4, models.RoleUser)

		rr := serve(t, h.Init(), http.MethodGet, "/api/upload/download/abc", authorization, nil, "")

		assertMessage(t, rr, http.StatusBadRequest, "invalid id")
	})
}
